package services

import "blurbgen/internal/models"

var samples = []models.Sample{
	{ProductName: "EcoBottle", Category: "reusable water bottle"},
	{ProductName: "SmartDesk", Category: "standing desk"},
	{ProductName: "CloudRunner", Category: "running shoes"},
	{ProductName: "FreshBrew", Category: "coffee maker"},
	{ProductName: "ZenPad", Category: "meditation app"},
}

// ListSamples returns the fixed example inputs. Callers get their own copy.
func ListSamples() []models.Sample {
	out := make([]models.Sample, len(samples))
	copy(out, samples)
	return out
}
