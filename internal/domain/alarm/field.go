package alarm

import "strings"

// Field is the bulb state field an alarm transitions.
type Field uint8

// Supported transition fields.
const (
	FieldUnknown Field = iota
	FieldHue
	FieldSaturation
	FieldBrightness
	FieldLevel
	FieldKelvin
	FieldColorTemp
)

//nolint:gochecknoglobals // Static name table.
var fieldNames = map[Field]string{
	FieldHue:        "hue",
	FieldSaturation: "saturation",
	FieldBrightness: "brightness",
	FieldLevel:      "level",
	FieldKelvin:     "kelvin",
	FieldColorTemp:  "color_temp",
}

// ParseField returns the field with the given name or FieldUnknown.
func ParseField(name string) Field {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range fieldNames {
		if n == name {
			return f
		}
	}

	return FieldUnknown
}

// String returns the state field name.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether the field can be used for alarms.
func (f Field) Valid() bool {
	_, ok := fieldNames[f]

	return ok
}
