package services

import (
	"testing"

	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/stretchr/testify/assert"
)

func TestDiscountService_EffectiveCount_CollapsesPressureVariants(t *testing.T) {
	service := NewDiscountService(NewCatalogService())

	assert.Equal(t, 0, service.EffectiveCount(models.Selection{}))
	assert.Equal(t, 1, service.EffectiveCount(models.Selection{ServiceDriveway: true}))

	// The two pressure-wash variants are one category.
	bothPressure := models.Selection{ServiceDriveway: true, ServicePatio: true}
	assert.Equal(t, 1, service.EffectiveCount(bothPressure))

	// No other pair collapses.
	assert.Equal(t, 2, service.EffectiveCount(models.Selection{ServiceWindows: true, ServiceGutter: true}))
	assert.Equal(t, 2, service.EffectiveCount(models.Selection{ServiceHouse: true, ServiceRoof: true}))

	// Both pressure variants plus windows: pressure + windows = 2.
	assert.Equal(t, 2, service.EffectiveCount(models.Selection{
		ServiceDriveway: true,
		ServicePatio:    true,
		ServiceWindows:  true,
	}))

	// All six services collapse to five categories.
	all := models.Selection{
		ServiceDriveway: true,
		ServicePatio:    true,
		ServiceWindows:  true,
		ServiceHouse:    true,
		ServiceRoof:     true,
		ServiceGutter:   true,
	}
	assert.Equal(t, 5, service.EffectiveCount(all))
}

func TestDiscountService_Rate_TierTable(t *testing.T) {
	service := NewDiscountService(NewCatalogService())

	expected := map[int]float64{
		0: 0,
		1: 0,
		2: 0.05,
		3: 0.10,
		4: 0.15,
		5: 0.20,
		6: 0.20, // 5+ holds the top tier
		9: 0.20,
	}

	for count, rate := range expected {
		assert.Equal(t, rate, service.Rate(count), "rate for effective count %d", count)
	}
}

func TestDiscountService_Rate_DependsOnlyOnCount(t *testing.T) {
	service := NewDiscountService(NewCatalogService())

	// Any two-category selection lands the same rate regardless of which
	// services or prices make it up.
	combos := []models.Selection{
		{ServiceWindows: true, ServiceGutter: true},
		{ServiceHouse: true, ServiceRoof: true},
		{ServiceDriveway: true, ServicePatio: true, ServiceWindows: true},
	}

	for _, sel := range combos {
		count := service.EffectiveCount(sel)
		assert.Equal(t, 2, count)
		assert.Equal(t, 0.05, service.Rate(count))
	}
}

func TestDiscountService_Amount_RoundsToCents(t *testing.T) {
	service := NewDiscountService(NewCatalogService())

	// 698 x 5% = 34.90
	assert.Equal(t, 34.90, service.Amount(698, 2))
	// 1047 x 5% = 52.35
	assert.Equal(t, 52.35, service.Amount(1047, 2))
	// 2144 x 20% = 428.80
	assert.Equal(t, 428.80, service.Amount(2144, 5))
	// No discount below two categories.
	assert.Equal(t, 0.00, service.Amount(348, 1))
}
