package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	bookingpb "github.com/FleetBook/FleetBook/internal/api/proto/booking"
	"github.com/FleetBook/FleetBook/internal/audit"
	"github.com/FleetBook/FleetBook/internal/common/logger"
	commonserver "github.com/FleetBook/FleetBook/internal/common/server"
	"github.com/FleetBook/FleetBook/internal/notify"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

type GRPCServer struct {
	bookingpb.UnimplementedBookingServiceServer

	svc *Service
}

func NewGRPCServer(db *gorm.DB, notifier notify.Notifier, sink audit.Sink, prefs PreferenceSource, log logger.Logger) *GRPCServer {
	repo := NewRepo(db)
	return &GRPCServer{
		svc: NewService(repo, notifier, sink, prefs, log),
	}
}

// actorFrom 优先使用鉴权上下文里的主体；鉴权未启用时信任请求里携带的 id。
func actorFrom(ctx context.Context, fallbackID string) Actor {
	if ai, ok := commonserver.AuthFromContext(ctx); ok && strings.TrimSpace(ai.Subject) != "" {
		return Actor{ID: ai.Subject, Roles: ai.Roles}
	}
	return Actor{ID: strings.TrimSpace(fallbackID)}
}

// toStatusErr 业务错误分类到 gRPC 响应码的映射。
func toStatusErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrConflict):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrBadRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *GRPCServer) CreateReservation(ctx context.Context, req *bookingpb.CreateReservationRequest) (*bookingpb.CreateReservationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	requester := req.GetRequesterId()
	if ai, ok := commonserver.AuthFromContext(ctx); ok && strings.TrimSpace(ai.Subject) != "" {
		requester = ai.Subject
	}
	in := CreateInput{
		VehicleID:   req.GetVehicleId(),
		RequesterID: requester,
		OperatorID:  req.GetOperatorId(),
		Purpose:     req.GetPurpose(),
		Destination: req.GetDestination(),
		Passengers:  int(req.GetPassengers()),
		NeedsDriver: req.GetNeedsDriver(),
		StartTime:   time.Unix(req.GetStartTime(), 0),
		EndTime:     time.Unix(req.GetEndTime(), 0),
		SaveAsDraft: req.GetSaveAsDraft(),
	}
	r, err := s.svc.Create(ctx, in)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &bookingpb.CreateReservationResponse{Reservation: toPBReservation(r)}, nil
}

func (s *GRPCServer) SubmitReservation(ctx context.Context, req *bookingpb.SubmitReservationRequest) (*bookingpb.SubmitReservationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	r, err := s.svc.Submit(ctx, req.GetId(), actorFrom(ctx, req.GetActorId()))
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &bookingpb.SubmitReservationResponse{Reservation: toPBReservation(r)}, nil
}

func (s *GRPCServer) ModifyReservation(ctx context.Context, req *bookingpb.ModifyReservationRequest) (*bookingpb.ModifyReservationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	in := ModifyInput{
		Purpose:     req.GetPurpose(),
		Destination: req.GetDestination(),
		Passengers:  int(req.GetPassengers()),
		OperatorID:  req.GetOperatorId(),
	}
	if req.GetStartTime() > 0 || req.GetEndTime() > 0 {
		in.StartTime = time.Unix(req.GetStartTime(), 0)
		in.EndTime = time.Unix(req.GetEndTime(), 0)
	}
	if req.GetNeedsDriverSet() {
		v := req.GetNeedsDriver()
		in.NeedsDriver = &v
	}
	r, err := s.svc.Modify(ctx, req.GetId(), actorFrom(ctx, req.GetActorId()), in)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &bookingpb.ModifyReservationResponse{Reservation: toPBReservation(r)}, nil
}

func (s *GRPCServer) ApproveReservation(ctx context.Context, req *bookingpb.ApproveReservationRequest) (*bookingpb.ApproveReservationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	actor := actorFrom(ctx, req.GetApproverId())
	if len(actor.Roles) == 0 {
		// 鉴权未启用的部署（内网/开发）信任请求声明的审批身份
		actor.Roles = []string{RoleApprover}
	}
	r, err := s.svc.Approve(ctx, req.GetId(), actor, req.GetComment())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &bookingpb.ApproveReservationResponse{Reservation: toPBReservation(r)}, nil
}

func (s *GRPCServer) RejectReservation(ctx context.Context, req *bookingpb.RejectReservationRequest) (*bookingpb.RejectReservationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	actor := actorFrom(ctx, req.GetApproverId())
	if len(actor.Roles) == 0 {
		actor.Roles = []string{RoleApprover}
	}
	r, err := s.svc.Reject(ctx, req.GetId(), actor, req.GetReason())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &bookingpb.RejectReservationResponse{Reservation: toPBReservation(r)}, nil
}

func (s *GRPCServer) CancelReservation(ctx context.Context, req *bookingpb.CancelReservationRequest) (*bookingpb.CancelReservationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	r, err := s.svc.Cancel(ctx, req.GetId(), actorFrom(ctx, req.GetActorId()), req.GetReason())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &bookingpb.CancelReservationResponse{Reservation: toPBReservation(r)}, nil
}

func (s *GRPCServer) CheckIn(ctx context.Context, req *bookingpb.CheckInRequest) (*bookingpb.CheckInResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	r, err := s.svc.CheckIn(ctx, req.GetId(), actorFrom(ctx, req.GetActorId()), req.GetDistance(), req.GetNotes())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &bookingpb.CheckInResponse{Reservation: toPBReservation(r)}, nil
}

func (s *GRPCServer) CheckOut(ctx context.Context, req *bookingpb.CheckOutRequest) (*bookingpb.CheckOutResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	in := CheckOutInput{
		Distance: req.GetDistance(),
		Notes:    req.GetNotes(),
		Rating:   int(req.GetRating()),
		Feedback: req.GetFeedback(),
	}
	r, err := s.svc.CheckOut(ctx, req.GetId(), actorFrom(ctx, req.GetActorId()), in)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &bookingpb.CheckOutResponse{Reservation: toPBReservation(r)}, nil
}

func (s *GRPCServer) CheckAvailability(ctx context.Context, req *bookingpb.CheckAvailabilityRequest) (*bookingpb.CheckAvailabilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	ok, err := s.svc.IsAvailable(ctx, req.GetVehicleId(), time.Unix(req.GetStartTime(), 0), time.Unix(req.GetEndTime(), 0))
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &bookingpb.CheckAvailabilityResponse{Available: ok}, nil
}

func (s *GRPCServer) GetReservation(ctx context.Context, req *bookingpb.GetReservationRequest) (*bookingpb.GetReservationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	r, err := s.svc.Get(ctx, req.GetId())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &bookingpb.GetReservationResponse{Reservation: toPBReservation(r)}, nil
}

func (s *GRPCServer) ListReservations(ctx context.Context, req *bookingpb.ListReservationsRequest) (*bookingpb.ListReservationsResponse, error) {
	f := ListFilter{}
	if req != nil {
		f.VehicleID = strings.TrimSpace(req.GetVehicleId())
		f.RequesterID = strings.TrimSpace(req.GetRequesterId())
		if st := strings.TrimSpace(req.GetStatus()); st != "" {
			f.Status = Status(st)
		}
		if req.GetFrom() > 0 {
			t := time.Unix(req.GetFrom(), 0)
			f.From = &t
		}
		if req.GetTo() > 0 {
			t := time.Unix(req.GetTo(), 0)
			f.To = &t
		}
		page := int(req.GetPage())
		size := int(req.GetPageSize())
		if page <= 0 {
			page = 1
		}
		if size <= 0 || size > 200 {
			size = 20
		}
		f.Offset = (page - 1) * size
		f.Limit = size
	}

	rs, total, err := s.svc.List(ctx, f)
	if err != nil {
		return nil, toStatusErr(err)
	}
	out := make([]*bookingpb.Reservation, 0, len(rs))
	for i := range rs {
		r := rs[i]
		out = append(out, toPBReservation(&r))
	}
	return &bookingpb.ListReservationsResponse{Reservations: out, Total: total}, nil
}

func (s *GRPCServer) ListHistory(ctx context.Context, req *bookingpb.ListHistoryRequest) (*bookingpb.ListHistoryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	hs, err := s.svc.ListHistory(ctx, req.GetReservationId())
	if err != nil {
		return nil, toStatusErr(err)
	}
	out := make([]*bookingpb.HistoryEntry, 0, len(hs))
	for _, h := range hs {
		out = append(out, &bookingpb.HistoryEntry{
			ReservationId: h.ReservationID,
			FromStatus:    string(h.FromStatus),
			ToStatus:      string(h.ToStatus),
			ChangedBy:     h.ChangedBy,
			Comment:       h.Comment,
			CreatedAt:     h.CreatedAt.Unix(),
		})
	}
	return &bookingpb.ListHistoryResponse{Entries: out}, nil
}

func toPBReservation(r *Reservation) *bookingpb.Reservation {
	if r == nil {
		return nil
	}
	var actualStart, actualEnd, approvedAt int64
	if r.ActualStartTime != nil {
		actualStart = r.ActualStartTime.Unix()
	}
	if r.ActualEndTime != nil {
		actualEnd = r.ActualEndTime.Unix()
	}
	if r.ApprovedAt != nil {
		approvedAt = r.ApprovedAt.Unix()
	}
	return &bookingpb.Reservation{
		Id:               r.ID,
		ReferenceNumber:  r.ReferenceNumber,
		VehicleId:        r.VehicleID,
		RequesterId:      r.RequesterID,
		OperatorId:       r.OperatorID,
		ApproverId:       r.ApproverID,
		Purpose:          r.Purpose,
		Destination:      r.Destination,
		Passengers:       int32(r.Passengers),
		NeedsDriver:      r.NeedsDriver,
		StartTime:        r.StartTime.Unix(),
		EndTime:          r.EndTime.Unix(),
		ActualStartTime:  actualStart,
		ActualEndTime:    actualEnd,
		Status:           string(r.Status),
		CheckInDistance:  r.CheckInDistance,
		CheckOutDistance: r.CheckOutDistance,
		EstimatedCost:    r.EstimatedCost,
		ActualCost:       r.ActualCost,
		RejectionReason:  r.RejectionReason,
		Rating:           int32(r.Rating),
		Feedback:         r.Feedback,
		CreatedAt:        r.CreatedAt.Unix(),
		UpdatedAt:        r.UpdatedAt.Unix(),
		ApprovedAt:       approvedAt,
	}
}
