package telemetry

import (
	"service/internal/entities"
)

func ToDomain(s *TelemetrySampleDB) *entities.TelemetrySample {
	if s == nil {
		return nil
	}

	return &entities.TelemetrySample{
		OrderID:          s.OrderID,
		Timestamp:        s.Timestamp,
		CurrentLatitude:  s.CurrentLatitude,
		CurrentLongitude: s.CurrentLongitude,
	}
}

func FromDomain(sample *entities.TelemetrySample) *TelemetrySampleDB {
	if sample == nil {
		return nil
	}

	return &TelemetrySampleDB{
		OrderID:          sample.OrderID,
		Timestamp:        sample.Timestamp,
		CurrentLatitude:  sample.CurrentLatitude,
		CurrentLongitude: sample.CurrentLongitude,
	}
}

func ToDomainList(samplesDB []TelemetrySampleDB) []entities.TelemetrySample {
	if len(samplesDB) == 0 {
		return []entities.TelemetrySample{}
	}

	result := make([]entities.TelemetrySample, len(samplesDB))
	for i, sampleDB := range samplesDB {
		result[i] = *ToDomain(&sampleDB)
	}
	return result
}
