package fleet

import (
	"context"
	"strings"

	fleetpb "github.com/FleetBook/FleetBook/internal/api/proto/fleet"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

type GRPCServer struct {
	fleetpb.UnimplementedFleetServiceServer
	repo *Repo
}

func NewGRPCServer(db *gorm.DB) *GRPCServer {
	return &GRPCServer{repo: NewRepo(db)}
}

func (s *GRPCServer) UpsertVehicle(ctx context.Context, req *fleetpb.UpsertVehicleRequest) (*fleetpb.UpsertVehicleResponse, error) {
	if req == nil || req.GetVehicle() == nil {
		return nil, status.Error(codes.InvalidArgument, "vehicle required")
	}
	in := req.GetVehicle()

	plate := strings.TrimSpace(in.GetPlateNumber())
	if plate == "" {
		return nil, status.Error(codes.InvalidArgument, "plate_number required")
	}
	if in.GetDailyRate() < 0 || in.GetDistanceRate() < 0 {
		return nil, status.Error(codes.InvalidArgument, "rates must be non-negative")
	}

	id := strings.TrimSpace(in.GetId())
	st := Status(strings.TrimSpace(in.GetStatus()))
	if st == "" {
		st = StatusAvailable
	}
	if !ValidStatus(st) {
		return nil, status.Error(codes.InvalidArgument, "unknown vehicle status")
	}

	// 里程表只增不减：更新已有车辆时不允许回拨读数
	if id != "" {
		if prev, err := s.repo.FindByID(ctx, id); err == nil && in.GetCurrentDistance() < prev.CurrentDistance {
			return nil, status.Error(codes.InvalidArgument, "current_distance may not decrease")
		}
	} else {
		id = uuid.NewString()
	}

	v := &Vehicle{
		ID:              id,
		PlateNumber:     plate,
		VIN:             strings.TrimSpace(in.GetVin()),
		Model:           strings.TrimSpace(in.GetModel()),
		Status:          st,
		CurrentDistance: in.GetCurrentDistance(),
		DailyRate:       in.GetDailyRate(),
		DistanceRate:    in.GetDistanceRate(),
		IsActive:        in.GetIsActive(),
	}
	if err := s.repo.Upsert(ctx, v); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	latest, err := s.repo.FindByID(ctx, v.ID)
	if err != nil {
		// 查询失败时仍返回写入的内容（时间戳可能为空）
		latest = v
	}
	return &fleetpb.UpsertVehicleResponse{Vehicle: toPB(latest)}, nil
}

func (s *GRPCServer) GetVehicle(ctx context.Context, req *fleetpb.GetVehicleRequest) (*fleetpb.GetVehicleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	v, err := s.repo.FindByID(ctx, id)
	if IsNotFound(err) {
		return nil, status.Error(codes.NotFound, "vehicle not found")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &fleetpb.GetVehicleResponse{Vehicle: toPB(v)}, nil
}

func (s *GRPCServer) SetVehicleStatus(ctx context.Context, req *fleetpb.SetVehicleStatusRequest) (*fleetpb.SetVehicleStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	id := strings.TrimSpace(req.GetId())
	st := Status(strings.TrimSpace(req.GetStatus()))
	if id == "" || st == "" {
		return nil, status.Error(codes.InvalidArgument, "id/status required")
	}
	if !ValidStatus(st) {
		return nil, status.Error(codes.InvalidArgument, "unknown vehicle status")
	}
	// 用车中的车辆不允许目录侧改状态，必须先走还车流程
	cur, err := s.repo.FindByID(ctx, id)
	if IsNotFound(err) {
		return nil, status.Error(codes.NotFound, "vehicle not found")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if cur.Status == StatusInUse && st != StatusInUse {
		return nil, status.Error(codes.FailedPrecondition, "vehicle is in use; complete the reservation first")
	}

	v, err := s.repo.SetStatus(ctx, id, st)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &fleetpb.SetVehicleStatusResponse{Vehicle: toPB(v)}, nil
}

func (s *GRPCServer) ListVehicles(ctx context.Context, req *fleetpb.ListVehiclesRequest) (*fleetpb.ListVehiclesResponse, error) {
	st := Status("")
	activeOnly := false
	page := 1
	size := 20
	if req != nil {
		st = Status(strings.TrimSpace(req.GetStatus()))
		activeOnly = req.GetActiveOnly()
		if req.GetPage() > 0 {
			page = int(req.GetPage())
		}
		if req.GetPageSize() > 0 && req.GetPageSize() <= 200 {
			size = int(req.GetPageSize())
		}
	}
	offset := (page - 1) * size
	vs, total, err := s.repo.List(ctx, st, activeOnly, offset, size)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := make([]*fleetpb.Vehicle, 0, len(vs))
	for i := range vs {
		v := vs[i]
		out = append(out, toPB(&v))
	}
	return &fleetpb.ListVehiclesResponse{Vehicles: out, Total: total}, nil
}

func toPB(v *Vehicle) *fleetpb.Vehicle {
	if v == nil {
		return nil
	}
	return &fleetpb.Vehicle{
		Id:              v.ID,
		PlateNumber:     v.PlateNumber,
		Vin:             v.VIN,
		Model:           v.Model,
		Status:          string(v.Status),
		CurrentDistance: v.CurrentDistance,
		DailyRate:       v.DailyRate,
		DistanceRate:    v.DistanceRate,
		IsActive:        v.IsActive,
		CreatedAt:       v.CreatedAt.Unix(),
		UpdatedAt:       v.UpdatedAt.Unix(),
	}
}
