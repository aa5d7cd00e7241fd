package alarm

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	pb "github.com/oshokin/light-alarm/internal/pb/v1"
	"github.com/oshokin/light-alarm/internal/service/scheduler"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	CreateAlarm(ctx context.Context, actor *domain.Actor, req *domain.CreateRequest) (*domain.Alarm, error)
	GetAlarm(ctx context.Context, id uint32) (*domain.Alarm, error)
	ListAlarms(ctx context.Context) []*domain.Alarm
	DeleteAlarm(ctx context.Context, actor *domain.Actor, id uint32) bool
	ClearAlarms(ctx context.Context, actor *domain.Actor)
	StopAlarm(ctx context.Context, actor *domain.Actor) error
	SnoozeAlarm(ctx context.Context, actor *domain.Actor) error
	CancelAutoTurnOff(ctx context.Context, actor *domain.Actor) bool
	Status(ctx context.Context) (scheduler.Status, []uint32)
	Time(ctx context.Context) uint32
	SetTime(ctx context.Context, actor *domain.Actor, unix int64) (uint32, error)
	SyncTime(ctx context.Context, actor *domain.Actor) (uint32, error)
}

// Server implements the AlarmService gRPC API.
type Server struct {
	pb.UnimplementedAlarmServiceServer

	// service provides the business logic for alarm operations.
	service Service
}

// errActorRequired is the status returned for mutations without an actor.
var errActorRequired = status.Error(codes.InvalidArgument, "actor is required")

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// CreateAlarm validates and queues a new alarm.
func (s *Server) CreateAlarm(ctx context.Context, req *pb.CreateAlarmRequest) (*pb.AlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, errActorRequired
	}

	create, err := ToDomainCreateRequest(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	a, err := s.service.CreateAlarm(ctx, toDomainActor(req.GetActor()), create)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.AlarmResponse{Alarm: ToProtoAlarm(a)}, nil
}

// GetAlarm returns one queued alarm.
func (s *Server) GetAlarm(ctx context.Context, req *pb.AlarmIDRequest) (*pb.AlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	a, err := s.service.GetAlarm(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.AlarmResponse{Alarm: ToProtoAlarm(a)}, nil
}

// ListAlarms returns the queued alarms in trigger order.
func (s *Server) ListAlarms(ctx context.Context, _ *pb.ListAlarmsRequest) (*pb.ListAlarmsResponse, error) {
	list := s.service.ListAlarms(ctx)

	result := &pb.ListAlarmsResponse{
		Alarms: make([]*pb.Alarm, 0, len(list)),
	}

	for _, a := range list {
		result.Alarms = append(result.Alarms, ToProtoAlarm(a))
	}

	return result, nil
}

// DeleteAlarm removes one queued alarm.
func (s *Server) DeleteAlarm(ctx context.Context, req *pb.AlarmIDRequest) (*pb.DeleteAlarmResponse, error) {
	if req.GetActor() == nil {
		return nil, errActorRequired
	}

	deleted := s.service.DeleteAlarm(ctx, toDomainActor(req.GetActor()), req.GetId())

	return &pb.DeleteAlarmResponse{Deleted: deleted}, nil
}

// ClearAlarms removes every alarm.
func (s *Server) ClearAlarms(ctx context.Context, req *pb.ActorRequest) (*emptypb.Empty, error) {
	if req.GetActor() == nil {
		return nil, errActorRequired
	}

	s.service.ClearAlarms(ctx, toDomainActor(req.GetActor()))

	return new(emptypb.Empty), nil
}

// StopAlarm stops the active alarm.
func (s *Server) StopAlarm(ctx context.Context, req *pb.ActorRequest) (*emptypb.Empty, error) {
	if req.GetActor() == nil {
		return nil, errActorRequired
	}

	if err := s.service.StopAlarm(ctx, toDomainActor(req.GetActor())); err != nil {
		return nil, toStatusError(err)
	}

	return new(emptypb.Empty), nil
}

// SnoozeAlarm snoozes the active alarm.
func (s *Server) SnoozeAlarm(ctx context.Context, req *pb.ActorRequest) (*emptypb.Empty, error) {
	if req.GetActor() == nil {
		return nil, errActorRequired
	}

	if err := s.service.SnoozeAlarm(ctx, toDomainActor(req.GetActor())); err != nil {
		return nil, toStatusError(err)
	}

	return new(emptypb.Empty), nil
}

// CancelAutoTurnOff disarms the turn-off timer.
func (s *Server) CancelAutoTurnOff(ctx context.Context, req *pb.ActorRequest) (*pb.CancelAutoTurnOffResponse, error) {
	if req.GetActor() == nil {
		return nil, errActorRequired
	}

	armed := s.service.CancelAutoTurnOff(ctx, toDomainActor(req.GetActor()))

	return &pb.CancelAutoTurnOffResponse{WasArmed: armed}, nil
}

// GetStatus returns a snapshot of the scheduler.
func (s *Server) GetStatus(ctx context.Context, _ *pb.StatusRequest) (*pb.StatusResponse, error) {
	st, stored := s.service.Status(ctx)

	return ToProtoStatus(st, stored), nil
}

// GetTime returns the scheduler time.
func (s *Server) GetTime(ctx context.Context, _ *pb.TimeRequest) (*pb.TimeResponse, error) {
	return ToProtoTime(s.service.Time(ctx)), nil
}

// SetTime sets the scheduler clock.
func (s *Server) SetTime(ctx context.Context, req *pb.SetTimeRequest) (*pb.TimeResponse, error) {
	if req.GetActor() == nil {
		return nil, errActorRequired
	}

	now, err := s.service.SetTime(ctx, toDomainActor(req.GetActor()), req.GetUnixTime())
	if err != nil {
		return nil, toStatusError(err)
	}

	return ToProtoTime(now), nil
}

// SyncTime sets the scheduler clock from network time.
func (s *Server) SyncTime(ctx context.Context, req *pb.ActorRequest) (*pb.TimeResponse, error) {
	if req.GetActor() == nil {
		return nil, errActorRequired
	}

	now, err := s.service.SyncTime(ctx, toDomainActor(req.GetActor()))
	if err != nil {
		return nil, toStatusError(err)
	}

	return ToProtoTime(now), nil
}

// toStatusError maps scheduler errors to gRPC status errors.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, scheduler.ErrAlarmNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrSnoozeLimit):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, domain.ErrDevice),
		errors.Is(err, scheduler.ErrNoActiveAlarm),
		errors.Is(err, scheduler.ErrClockRejected):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, scheduler.ErrTimeUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, "internal scheduler error")
	}
}
