package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/entities"
	"github.com/TinyTaru/VintagestoryModmaker/internal/domain/services"
)

func TestItemCmd(t *testing.T) {
	out, err := executeCommand(t, newItemCmd(),
		"item",
		"--code", "copper-gear",
		"--texture", "item/gear-copper",
		"--shape", "item/gear",
		"--tag", "gear",
		"--creative-tab", "mymod",
	)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"code": "copper-gear",
		"class": "Item",
		"texture": {"base": "item/gear-copper"},
		"shape": {"base": "item/gear"},
		"creativeinventory": {"mymod": ["*"]},
		"maxstacksize": 64,
		"materialdensity": 300,
		"tags": ["gear"]
	}`, out)
}

func TestItemCmd_Food(t *testing.T) {
	out, err := executeCommand(t, newItemCmd(),
		"item", "--code", "sweetberry", "--food", "--satiety", "120.7", "--food-category", "fruit")
	require.NoError(t, err)

	var doc services.ItemDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, entities.ItemClassFood, doc.Class)
	require.NotNil(t, doc.NutritionProps)
	assert.Equal(t, 120, doc.NutritionProps.Satiety)
	assert.Equal(t, "fruit", doc.NutritionProps.FoodCategory)
	assert.Equal(t, map[string]float64{"fruit": 0.5}, doc.NutritionProps.Nutrition)
	assert.Nil(t, doc.Shape)
}

func TestItemCmd_Fuel(t *testing.T) {
	out, err := executeCommand(t, newItemCmd(),
		"item", "--code", "coke", "--burn-temperature", "1300", "--burn-duration", "40")
	require.NoError(t, err)

	var doc services.ItemDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.NotNil(t, doc.CombustibleProps)
	assert.Equal(t, 1300, doc.CombustibleProps.BurnTemperature)
	assert.InDelta(t, 40.0, doc.CombustibleProps.BurnDuration, 0.001)
	assert.Nil(t, doc.NutritionProps)
}

func TestItemCmd_RequiresCode(t *testing.T) {
	_, err := executeCommand(t, newItemCmd(), "item", "--texture", "item/gear")
	assert.ErrorContains(t, err, "item code is required")
}
