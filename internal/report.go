package internal

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/google/uuid"
)

type Report struct {
	Identifier string       `json:"id"`
	Generator  string       `json:"generator"`
	Date       string       `json:"date"`
	DatasetID  string       `json:"datasetId"`
	Platform   string       `json:"platform,omitempty"`
	Folder     string       `json:"folder"`
	Pattern    string       `json:"pattern"`
	Samples    []SampleData `json:"samples"`
}

type SampleData struct {
	Filename    string  `json:"filename"`
	Fingerprint string  `json:"fingerprint"`
	TotalTime   TimeValue `json:"totalTime"`
	KernelTime  TimeValue `json:"kernelTime"`
}

// TimeValue is a float64 that survives JSON encoding when it is NaN or infinite.
// Finite values are plain JSON numbers, the others the strings "NaN", "+Inf" and "-Inf".
type TimeValue float64

func (v TimeValue) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return json.Marshal(f)
}

func (v *TimeValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*v = TimeValue(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = TimeValue(f)
	return nil
}

func sampleData(samples []Sample) []SampleData {
	data := make([]SampleData, 0, len(samples))
	for _, s := range samples {
		data = append(data, SampleData{
			Filename:    s.Filename,
			Fingerprint: s.FingerprintString(),
			TotalTime:   TimeValue(s.TotalTime),
			KernelTime:  TimeValue(s.KernelTime),
		})
	}
	return data
}

// GenerateReport creates a JSON report from a ProfileDataset. Samples are listed as collected, in row order.
func GenerateReport(dataset ProfileDataset, platform string) Report {
	return Report{
		Identifier: uuid.New().String(),
		Generator:  "sdaprof " + Version,
		Date:       dataset.DateString(),
		DatasetID:  dataset.Identifier,
		Platform:   platform,
		Folder:     dataset.Folder,
		Pattern:    dataset.Pattern,
		Samples:    sampleData(dataset.Samples),
	}
}
