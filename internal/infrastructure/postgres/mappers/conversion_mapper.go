package mappers

import (
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/infrastructure/postgres/models"
)

func ToDomainConversion(model *models.ConversionModel) *domain.Conversion {
	return &domain.Conversion{
		ID:          model.ID,
		AffiliateID: model.AffiliateID,
		Amount:      model.Amount,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		PaidAt:      model.PaidAt,
	}
}

func ToGORMConversion(conversion *domain.Conversion) *models.ConversionModel {
	return &models.ConversionModel{
		ID:          conversion.ID,
		AffiliateID: conversion.AffiliateID,
		Amount:      conversion.Amount,
		Status:      conversion.Status,
		CreatedAt:   conversion.CreatedAt,
		PaidAt:      conversion.PaidAt,
	}
}
