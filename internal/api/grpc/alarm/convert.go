package alarm

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	pb "github.com/oshokin/light-alarm/internal/pb/v1"
	"github.com/oshokin/light-alarm/internal/service/scheduler"
)

// ToProtoAlarm converts a domain alarm to a protobuf message.
func ToProtoAlarm(a *domain.Alarm) *pb.Alarm {
	if a == nil {
		return nil
	}

	view := a.View()

	return &pb.Alarm{
		Id:              a.ID,
		Name:            a.Name,
		Alias:           a.Alias,
		NextTimeUtc2000: a.TriggerAt,
		NextTime:        view.NextTime,
		Repeat:          a.RepeatInterval,
		Duration:        a.Duration,
		AutoTurnOff:     a.AutoTurnOff,
		Field:           view.Field,
		StartValue:      uint32(a.StartValue),
		EndValue:        uint32(a.EndValue),
		Bulb:            view.Bulb,
		Init:            toProtoStruct(view.Init),
		Snoozes:         uint32(a.Snoozes),
	}
}

// ToProtoStatus converts a scheduler snapshot to a protobuf message.
func ToProtoStatus(st scheduler.Status, stored []uint32) *pb.StatusResponse {
	result := &pb.StatusResponse{
		State:       st.State.String(),
		Time:        domain.FormatTime(st.Now),
		TimeUtc2000: st.Now,
		Active:      ToProtoAlarm(st.Active),
		Queued:      int32(min(st.Queued, math.MaxInt32)), //nolint:gosec // Clamped above.
		NextId:      st.NextID,
		StoredIds:   stored,
	}

	if st.AutoTurnOffBulb != nil {
		result.AutoTurnOffAt = domain.FormatTime(st.AutoTurnOffAt)
		result.AutoTurnOffBulb = st.AutoTurnOffBulb.String()
	}

	return result
}

// ToProtoTime converts epoch-2000 seconds to a time response.
func ToProtoTime(now uint32) *pb.TimeResponse {
	return &pb.TimeResponse{
		UnixTime:  domain.ToUnix(now),
		Utc2000:   now,
		Formatted: domain.FormatTime(now),
	}
}

// toProtoStruct converts a normalized state document, nil when absent.
func toProtoStruct(doc map[string]any) *structpb.Struct {
	if doc == nil {
		return nil
	}

	s, err := structpb.NewStruct(doc)
	if err != nil {
		return nil
	}

	return s
}

// toDomainActor converts a protobuf actor to a domain actor.
func toDomainActor(actor *pb.Actor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// ToDomainCreateRequest converts a protobuf create request to a domain request.
func ToDomainCreateRequest(req *pb.CreateAlarmRequest) (*domain.CreateRequest, error) {
	start, err := toFieldValue("start_value", req.StartValue)
	if err != nil {
		return nil, err
	}

	end, err := toFieldValue("end_value", req.EndValue)
	if err != nil {
		return nil, err
	}

	result := &domain.CreateRequest{
		Name:        req.GetName(),
		Alias:       req.GetAlias(),
		UTCTime:     req.UtcTime,
		Time:        req.GetTime(),
		Date:        req.GetDate(),
		RepeatTime:  req.GetRepeatTime(),
		AutoTurnOff: req.GetAutoTurnOff(),
		Field:       req.GetField(),
		StartValue:  start,
		EndValue:    end,
		Duration:    req.Duration,
	}

	if req.GetInit() != nil {
		result.Init = req.GetInit().AsMap()
	}

	return result, nil
}

// toFieldValue narrows an optional transition value to the bulb range.
func toFieldValue(name string, v *uint32) (*uint16, error) {
	if v == nil {
		return nil, nil //nolint:nilnil // Absent value is reported by validation.
	}

	if *v > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %s %d is out of range", domain.ErrValidation, name, *v)
	}

	narrowed := uint16(*v)

	return &narrowed, nil
}
