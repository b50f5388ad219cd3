package item

import (
	"context"
	"errors"
	"strconv"
	"time"

	"Inventory-Tracker-API/domain"
	"Inventory-Tracker-API/entities"
	"Inventory-Tracker-API/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	ItemService interface {
		CreateItem(ctx context.Context, req domain.ItemRequest) (domain.CreateItemResponse, error)
		GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error)
		FilterItems(ctx context.Context, query domain.ItemFilterQuery) ([]domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.ItemUpdateRequest) (domain.ItemResponse, error)
		DeleteItem(ctx context.Context, id string) error
		CountItemsByEmail(ctx context.Context) ([]domain.ItemEmailCountResponse, error)
	}

	itemService struct {
		itemRepository ItemRepository
	}
)

func NewItemService(itemRepository ItemRepository) ItemService {
	return &itemService{
		itemRepository: itemRepository,
	}
}

func (s *itemService) CreateItem(ctx context.Context, req domain.ItemRequest) (domain.CreateItemResponse, error) {
	// The API accepts a date-only expiry; stored documents carry it at midnight.
	expiryDate, err := utils.ParseDate(req.ExpiryDate)
	if err != nil {
		return domain.CreateItemResponse{}, domain.ErrInvalidExpiryDate
	}

	insertDate := time.Now().UTC()
	if req.InsertDate != "" {
		insertDate, err = utils.ParseDatetime(req.InsertDate)
		if err != nil {
			return domain.CreateItemResponse{}, domain.ErrInvalidInsertDate
		}
	}

	item := &entities.Item{
		Name:       req.Name,
		Email:      req.Email,
		ItemName:   req.ItemName,
		Quantity:   req.Quantity,
		ExpiryDate: expiryDate,
		InsertDate: insertDate,
	}

	id, err := s.itemRepository.Insert(ctx, item)
	if err != nil {
		return domain.CreateItemResponse{}, err
	}

	return domain.CreateItemResponse{ID: id.Hex()}, nil
}

func (s *itemService) GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidID
	}

	item, err := s.itemRepository.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	return serializeItem(item), nil
}

func (s *itemService) FilterItems(ctx context.Context, query domain.ItemFilterQuery) ([]domain.ItemResponse, error) {
	filter, err := buildItemFilter(query)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepository.FindMany(ctx, filter)
	if err != nil {
		return nil, err
	}

	return serializeItems(items), nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.ItemUpdateRequest) (domain.ItemResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidID
	}

	expiryDate, err := utils.ParseDate(req.ExpiryDate)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidExpiryDate
	}

	// insert_date is never replaced; the update covers every other field.
	fields := bson.M{
		"name":        req.Name,
		"email":       req.Email,
		"item_name":   req.ItemName,
		"quantity":    req.Quantity,
		"expiry_date": expiryDate,
	}

	modified, err := s.itemRepository.UpdateByID(ctx, objectID, fields)
	if err != nil {
		return domain.ItemResponse{}, err
	}
	if modified == 0 {
		return domain.ItemResponse{}, domain.ErrItemNotModified
	}

	item, err := s.itemRepository.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	return serializeItem(item), nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	deleted, err := s.itemRepository.DeleteByID(ctx, objectID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *itemService) CountItemsByEmail(ctx context.Context) ([]domain.ItemEmailCountResponse, error) {
	counts, err := s.itemRepository.CountByEmail(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ItemEmailCountResponse, 0, len(counts))
	for _, count := range counts {
		res = append(res, domain.ItemEmailCountResponse{
			Email: count.Email,
			Count: count.Count,
		})
	}
	return res, nil
}

// buildItemFilter translates the optional query parameters into a conjunctive
// Mongo predicate. Dates and timestamps filter strictly newer records ($gt),
// quantity filters at-least ($gte), strings filter by equality.
func buildItemFilter(query domain.ItemFilterQuery) (bson.M, error) {
	filter := bson.M{}

	if query.Email != "" {
		filter["email"] = query.Email
	}
	if query.ExpiryDate != "" {
		expiryDate, err := utils.ParseDate(query.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidFilterParam
		}
		filter["expiry_date"] = bson.M{"$gt": expiryDate}
	}
	if query.InsertDate != "" {
		insertDate, err := utils.ParseDatetime(query.InsertDate)
		if err != nil {
			return nil, domain.ErrInvalidFilterParam
		}
		filter["insert_date"] = bson.M{"$gt": insertDate}
	}
	if query.Quantity != "" {
		quantity, err := strconv.Atoi(query.Quantity)
		if err != nil {
			return nil, domain.ErrInvalidFilterParam
		}
		filter["quantity"] = bson.M{"$gte": quantity}
	}

	return filter, nil
}

func serializeItem(item *entities.Item) domain.ItemResponse {
	return domain.ItemResponse{
		ID:         item.ID.Hex(),
		Name:       item.Name,
		ItemName:   item.ItemName,
		Quantity:   item.Quantity,
		ExpiryDate: utils.FormatDate(item.ExpiryDate),
		InsertDate: utils.FormatDatetime(item.InsertDate),
	}
}

func serializeItems(items []*entities.Item) []domain.ItemResponse {
	res := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, serializeItem(item))
	}
	return res
}
