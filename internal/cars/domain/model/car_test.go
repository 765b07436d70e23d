package model_test

import (
	"testing"

	"emile-auto/internal/cars/domain/model"
	sharederrors "emile-auto/internal/shared/errors"

	"github.com/stretchr/testify/assert"
)

func TestCarValidate(t *testing.T) {
	testCases := []struct {
		name    string
		car     model.Car
		wantErr string
	}{
		{
			name: "minimal valid car",
			car:  model.Car{Make: "Toyota"},
		},
		{
			name: "full car with attributes",
			car: model.Car{
				Make:  "Peugeot",
				Model: "208",
				Price: 15000,
				Attributes: map[string]interface{}{
					"mileage": 42000,
					"fuel":    "diesel",
				},
			},
		},
		{
			name:    "missing make",
			car:     model.Car{Price: 15000},
			wantErr: "make is required",
		},
		{
			name:    "negative price",
			car:     model.Car{Make: "Toyota", Price: -1},
			wantErr: "price must not be negative",
		},
		{
			name: "attribute shadowing views",
			car: model.Car{
				Make:       "Toyota",
				Attributes: map[string]interface{}{"views": 9999},
			},
			wantErr: `attribute "views" conflicts with a built-in field`,
		},
		{
			name: "attribute shadowing created_at",
			car: model.Car{
				Make:       "Toyota",
				Attributes: map[string]interface{}{"created_at": "2020-01-01"},
			},
			wantErr: `attribute "created_at" conflicts with a built-in field`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.car.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, sharederrors.IsValidation(err))
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}
