package alarm

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	grpcapi "github.com/oshokin/light-alarm/internal/api/grpc/alarm"
	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	pb "github.com/oshokin/light-alarm/internal/pb/v1"
	"github.com/oshokin/light-alarm/internal/service/scheduler"
)

// Headers identifying the actor of a mutating request.
const (
	HeaderActorHostname = "X-Actor-Hostname"
	HeaderActorUsername = "X-Actor-Username"
)

// defaultUsername is recorded when a request carries no username header.
const defaultUsername = "http"

// jsonContentType is the content type of every response body.
const jsonContentType = "application/json; charset=utf-8"

// marshalOptions renders messages with their proto field names.
//
//nolint:gochecknoglobals // Immutable rendering options.
var marshalOptions = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SetTimeRequest is the body of PUT /time.
type SetTimeRequest struct {
	UnixTime *int64 `json:"unix_time"`
}

// Handler serves the HTTP API routes.
type Handler struct {
	service grpcapi.Service
}

// NewHandler creates handlers over the provided service.
func NewHandler(service grpcapi.Service) *Handler {
	return &Handler{service: service}
}

// ListAlarms handles GET /alarms.
func (h *Handler) ListAlarms(c *gin.Context) {
	list := h.service.ListAlarms(c.Request.Context())

	result := &pb.ListAlarmsResponse{
		Alarms: make([]*pb.Alarm, 0, len(list)),
	}

	for _, a := range list {
		result.Alarms = append(result.Alarms, grpcapi.ToProtoAlarm(a))
	}

	render(c, http.StatusOK, result)
}

// CreateAlarm handles POST /alarms.
func (h *Handler) CreateAlarm(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", err.Error())

		return
	}

	var msg pb.CreateAlarmRequest
	if err = protojson.Unmarshal(body, &msg); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", err.Error())

		return
	}

	req, err := grpcapi.ToDomainCreateRequest(&msg)
	if err != nil {
		writeServiceError(c, err)

		return
	}

	a, err := h.service.CreateAlarm(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		writeServiceError(c, err)

		return
	}

	render(c, http.StatusCreated, &pb.AlarmResponse{Alarm: grpcapi.ToProtoAlarm(a)})
}

// ClearAlarms handles DELETE /alarms.
func (h *Handler) ClearAlarms(c *gin.Context) {
	h.service.ClearAlarms(c.Request.Context(), actorFrom(c))

	c.Status(http.StatusNoContent)
}

// GetAlarm handles GET /alarms/:id.
func (h *Handler) GetAlarm(c *gin.Context) {
	id, ok := alarmID(c)
	if !ok {
		return
	}

	a, err := h.service.GetAlarm(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)

		return
	}

	render(c, http.StatusOK, &pb.AlarmResponse{Alarm: grpcapi.ToProtoAlarm(a)})
}

// DeleteAlarm handles DELETE /alarms/:id.
func (h *Handler) DeleteAlarm(c *gin.Context) {
	id, ok := alarmID(c)
	if !ok {
		return
	}

	if !h.service.DeleteAlarm(c.Request.Context(), actorFrom(c), id) {
		writeError(c, http.StatusNotFound, "not_found", "alarm not found")

		return
	}

	render(c, http.StatusOK, &pb.DeleteAlarmResponse{Deleted: true})
}

// Status handles GET /active.
func (h *Handler) Status(c *gin.Context) {
	st, stored := h.service.Status(c.Request.Context())

	render(c, http.StatusOK, grpcapi.ToProtoStatus(st, stored))
}

// StopAlarm handles POST /active/stop.
func (h *Handler) StopAlarm(c *gin.Context) {
	if err := h.service.StopAlarm(c.Request.Context(), actorFrom(c)); err != nil {
		writeServiceError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// SnoozeAlarm handles POST /active/snooze.
func (h *Handler) SnoozeAlarm(c *gin.Context) {
	if err := h.service.SnoozeAlarm(c.Request.Context(), actorFrom(c)); err != nil {
		writeServiceError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// CancelAutoTurnOff handles DELETE /active/auto_turn_off.
func (h *Handler) CancelAutoTurnOff(c *gin.Context) {
	armed := h.service.CancelAutoTurnOff(c.Request.Context(), actorFrom(c))

	render(c, http.StatusOK, &pb.CancelAutoTurnOffResponse{WasArmed: armed})
}

// GetTime handles GET /time.
func (h *Handler) GetTime(c *gin.Context) {
	render(c, http.StatusOK, grpcapi.ToProtoTime(h.service.Time(c.Request.Context())))
}

// SetTime handles PUT /time.
func (h *Handler) SetTime(c *gin.Context) {
	var req SetTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", err.Error())

		return
	}

	if req.UnixTime == nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "unix_time is required")

		return
	}

	now, err := h.service.SetTime(c.Request.Context(), actorFrom(c), *req.UnixTime)
	if err != nil {
		writeServiceError(c, err)

		return
	}

	render(c, http.StatusOK, grpcapi.ToProtoTime(now))
}

// SyncTime handles POST /time/sync.
func (h *Handler) SyncTime(c *gin.Context) {
	now, err := h.service.SyncTime(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeServiceError(c, err)

		return
	}

	render(c, http.StatusOK, grpcapi.ToProtoTime(now))
}

// actorFrom builds the actor from the request headers.
func actorFrom(c *gin.Context) *domain.Actor {
	actor := &domain.Actor{
		Hostname: c.GetHeader(HeaderActorHostname),
		Username: c.GetHeader(HeaderActorUsername),
	}

	if actor.Hostname == "" {
		actor.Hostname = c.ClientIP()
	}

	if actor.Username == "" {
		actor.Username = defaultUsername
	}

	return actor
}

// alarmID parses the :id path parameter and writes an error when it is invalid.
func alarmID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid_id", "alarm id must be an unsigned integer")

		return 0, false
	}

	return uint32(id), true
}

// render writes a protobuf message as JSON.
func render(c *gin.Context, status int, msg proto.Message) {
	body, err := marshalOptions.Marshal(msg)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal", err.Error())

		return
	}

	c.Data(status, jsonContentType, body)
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps scheduler errors to HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(c, http.StatusBadRequest, "invalid_argument", err.Error())
	case errors.Is(err, scheduler.ErrAlarmNotFound):
		writeError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrSnoozeLimit):
		writeError(c, http.StatusTooManyRequests, "snooze_limit", err.Error())
	case errors.Is(err, domain.ErrDevice):
		writeError(c, http.StatusBadGateway, "device_error", err.Error())
	case errors.Is(err, scheduler.ErrNoActiveAlarm),
		errors.Is(err, scheduler.ErrClockRejected):
		writeError(c, http.StatusConflict, "failed_precondition", err.Error())
	case errors.Is(err, scheduler.ErrTimeUnavailable):
		writeError(c, http.StatusServiceUnavailable, "time_unavailable", err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal", "internal scheduler error")
	}
}
