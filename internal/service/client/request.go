package client

import (
	"fmt"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	pb "github.com/oshokin/light-alarm/internal/pb/v1"
)

// LoadCreateRequest reads an alarm definition from a YAML file.
// Keys are the proto field names of CreateAlarmRequest.
func LoadCreateRequest(path string) (*pb.CreateAlarmRequest, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read alarm definition: %w", err)
	}

	req := new(pb.CreateAlarmRequest)
	if err = decodeYAML(contents, req); err != nil {
		return nil, fmt.Errorf("decode alarm definition: %w", err)
	}

	return req, nil
}

// ParseInit decodes an initial state document given as YAML or JSON.
func ParseInit(text string) (*structpb.Struct, error) {
	if text == "" {
		return nil, nil //nolint:nilnil // No document is a valid result.
	}

	doc, err := yamlStruct([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("decode init document: %w", err)
	}

	return doc, nil
}

// decodeYAML maps a YAML document onto msg the way protojson maps JSON.
func decodeYAML(contents []byte, msg proto.Message) error {
	doc, err := yamlStruct(contents)
	if err != nil {
		return err
	}

	encoded, err := protojson.Marshal(doc)
	if err != nil {
		return err
	}

	return protojson.Unmarshal(encoded, msg)
}

// yamlStruct decodes a YAML mapping into a struct value.
func yamlStruct(contents []byte) (*structpb.Struct, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, err
	}

	return structpb.NewStruct(doc)
}
