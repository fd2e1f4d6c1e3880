package internal

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Time is encoded as CBOR tag 1004 with string representation
func (tw TimeWrapper) MarshalCBOR() ([]byte, error) {
	tag := cbor.Tag{Number: cborDateTag, Content: tw.Format(time.DateOnly)}
	return cbor.Marshal(tag)
}

func (tw *TimeWrapper) UnmarshalCBOR(data []byte) error {
	var tag cbor.Tag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return err
	}

	if tag.Number == cborDateTag {
		if dateStr, ok := tag.Content.(string); ok {
			if parsedDate, err := time.Parse(time.DateOnly, dateStr); err == nil {
				tw.Time = parsedDate
				return nil
			}
		}
	}

	return fmt.Errorf("unable to unmarshal TimeWrapper")
}

// WriteDataset writes the dataset in CBOR format.
func WriteDataset(w io.Writer, dataset ProfileDataset) error {
	return cbor.NewEncoder(w).Encode(dataset)
}

// WriteDatasetFile writes the dataset to a file in CBOR format.
func WriteDatasetFile(dataset ProfileDataset, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := WriteDataset(file, dataset); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// LoadDatasetFile loads a dataset from a CBOR file.
func LoadDatasetFile(filename string) (ProfileDataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return ProfileDataset{}, err
	}
	defer func() { _ = file.Close() }()

	return LoadDatasetFromReader(file)
}

// LoadDatasetFromReader decodes a single dataset and checks its format version.
func LoadDatasetFromReader(reader io.Reader) (ProfileDataset, error) {
	var dataset ProfileDataset
	if err := cbor.NewDecoder(reader).Decode(&dataset); err != nil {
		return ProfileDataset{}, fmt.Errorf("failed to unmarshal CBOR: %w", err)
	}
	if dataset.Version != DatasetFormatVersion {
		return ProfileDataset{}, fmt.Errorf("unsupported dataset version %d, expected %d", dataset.Version, DatasetFormatVersion)
	}
	return dataset, nil
}
