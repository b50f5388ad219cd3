package clockin

import (
	"context"
	"errors"
	"time"

	"Inventory-Tracker-API/domain"
	"Inventory-Tracker-API/entities"
	"Inventory-Tracker-API/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	ClockInService interface {
		CreateClockIn(ctx context.Context, req domain.ClockInRequest) (domain.CreateClockInResponse, error)
		GetClockInByID(ctx context.Context, id string) (domain.ClockInResponse, error)
		FilterClockIns(ctx context.Context, query domain.ClockInFilterQuery) ([]domain.ClockInResponse, error)
		UpdateClockIn(ctx context.Context, id string, req domain.ClockInRequest) (domain.ClockInResponse, error)
		DeleteClockIn(ctx context.Context, id string) error
	}

	clockInService struct {
		clockInRepository ClockInRepository
	}
)

func NewClockInService(clockInRepository ClockInRepository) ClockInService {
	return &clockInService{
		clockInRepository: clockInRepository,
	}
}

// resolveInsertDatetime stamps the record at request time when the body omits
// the field. Evaluated per call, never memoized.
func resolveInsertDatetime(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	t, err := utils.ParseDatetime(value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInsertDatetime
	}
	return t, nil
}

func (s *clockInService) CreateClockIn(ctx context.Context, req domain.ClockInRequest) (domain.CreateClockInResponse, error) {
	insertDatetime, err := resolveInsertDatetime(req.InsertDatetime)
	if err != nil {
		return domain.CreateClockInResponse{}, err
	}

	clockIn := &entities.ClockIn{
		Email:          req.Email,
		Location:       req.Location,
		InsertDatetime: insertDatetime,
	}

	id, err := s.clockInRepository.Insert(ctx, clockIn)
	if err != nil {
		return domain.CreateClockInResponse{}, err
	}

	return domain.CreateClockInResponse{ID: id.Hex()}, nil
}

func (s *clockInService) GetClockInByID(ctx context.Context, id string) (domain.ClockInResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ClockInResponse{}, domain.ErrInvalidID
	}

	clockIn, err := s.clockInRepository.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ClockInResponse{}, domain.ErrClockInNotFound
		}
		return domain.ClockInResponse{}, err
	}

	return serializeClockIn(clockIn), nil
}

func (s *clockInService) FilterClockIns(ctx context.Context, query domain.ClockInFilterQuery) ([]domain.ClockInResponse, error) {
	filter, err := buildClockInFilter(query)
	if err != nil {
		return nil, err
	}

	clockIns, err := s.clockInRepository.FindMany(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(clockIns) == 0 {
		return nil, domain.ErrNoClockInRecords
	}

	return serializeClockIns(clockIns), nil
}

func (s *clockInService) UpdateClockIn(ctx context.Context, id string, req domain.ClockInRequest) (domain.ClockInResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ClockInResponse{}, domain.ErrInvalidID
	}

	insertDatetime, err := resolveInsertDatetime(req.InsertDatetime)
	if err != nil {
		return domain.ClockInResponse{}, err
	}

	fields := bson.M{
		"email":           req.Email,
		"location":        req.Location,
		"insert_datetime": insertDatetime,
	}

	modified, err := s.clockInRepository.UpdateByID(ctx, objectID, fields)
	if err != nil {
		return domain.ClockInResponse{}, err
	}
	if modified == 0 {
		return domain.ClockInResponse{}, domain.ErrClockInNotModified
	}

	clockIn, err := s.clockInRepository.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ClockInResponse{}, domain.ErrClockInNotFound
		}
		return domain.ClockInResponse{}, err
	}

	return serializeClockIn(clockIn), nil
}

func (s *clockInService) DeleteClockIn(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	deleted, err := s.clockInRepository.DeleteByID(ctx, objectID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrClockInNotFound
	}
	return nil
}

func buildClockInFilter(query domain.ClockInFilterQuery) (bson.M, error) {
	filter := bson.M{}

	if query.Email != "" {
		filter["email"] = query.Email
	}
	if query.Location != "" {
		filter["location"] = query.Location
	}
	if query.InsertDatetime != "" {
		insertDatetime, err := utils.ParseDatetime(query.InsertDatetime)
		if err != nil {
			return nil, domain.ErrInvalidFilterParam
		}
		filter["insert_datetime"] = bson.M{"$gt": insertDatetime}
	}

	return filter, nil
}

func serializeClockIn(clockIn *entities.ClockIn) domain.ClockInResponse {
	return domain.ClockInResponse{
		ID:             clockIn.ID.Hex(),
		Email:          clockIn.Email,
		Location:       clockIn.Location,
		InsertDatetime: utils.FormatDatetime(clockIn.InsertDatetime),
	}
}

func serializeClockIns(clockIns []*entities.ClockIn) []domain.ClockInResponse {
	res := make([]domain.ClockInResponse, 0, len(clockIns))
	for _, clockIn := range clockIns {
		res = append(res, serializeClockIn(clockIn))
	}
	return res
}
