package usecase

import (
	"context"
	"errors"

	"shop-analytics-service/internal/analytics/core/domain"
	"shop-analytics-service/internal/analytics/core/ports"
)

var ErrUnknownCollection = errors.New("unknown collection")

type ListDocumentsUseCase struct {
	reader ports.DocumentReader
}

func NewListDocumentsUseCase(reader ports.DocumentReader) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{reader: reader}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, c domain.Collection) ([]domain.Document, error) {
	switch c {
	case domain.CollectionOrders, domain.CollectionCustomers, domain.CollectionProducts:
	default:
		return nil, ErrUnknownCollection
	}

	docs, err := uc.reader.ListDocuments(ctx, c)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}
