package models_test

import (
	"github.com/financecoach/backend/internal/finance"
	"github.com/financecoach/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSetOverride() {
	limit := decimal.NewFromInt(900)
	suite.Require().Nil(models.SetOverride(models.DB, finance.Food, &limit))

	overrides, err := models.Overrides(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(overrides, 1)
	suite.Assert().True(overrides[finance.Food].Equal(limit))

	// Setting it again replaces the value
	limit = decimal.NewFromInt(1100)
	suite.Require().Nil(models.SetOverride(models.DB, finance.Food, &limit))

	overrides, err = models.Overrides(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(overrides, 1)
	suite.Assert().True(overrides[finance.Food].Equal(limit), "Override is %s", overrides[finance.Food])
}

func (suite *TestSuiteStandard) TestRemoveOverride() {
	limit := decimal.NewFromInt(300)
	suite.Require().Nil(models.SetOverride(models.DB, finance.Transport, &limit))
	suite.Require().Nil(models.SetOverride(models.DB, finance.Transport, nil))

	overrides, err := models.Overrides(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(overrides, 0)

	// Removing a missing override is fine
	suite.Assert().Nil(models.SetOverride(models.DB, finance.Utilities, nil))
}

func (suite *TestSuiteStandard) TestSetOverrideNegative() {
	limit := decimal.NewFromInt(-1)
	err := models.SetOverride(models.DB, finance.Food, &limit)
	suite.Assert().ErrorIs(err, finance.ErrInvalidInput)
}
