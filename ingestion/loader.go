// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadJSON reads a JSON array of review inputs.
func LoadJSON(r io.Reader) ([]ReviewInput, error) {
	var inputs []ReviewInput
	if err := json.NewDecoder(r).Decode(&inputs); err != nil {
		return nil, fmt.Errorf("decoding review JSON: %w", err)
	}
	return inputs, nil
}

// LoadCSV reads review inputs from CSV. The first row must be a header
// naming at least the text, rating, and date columns; column order is free
// and extra columns are ignored.
func LoadCSV(r io.Reader) ([]ReviewInput, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"text", "rating", "date"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrBadHeader, required)
		}
	}

	inputs := []ReviewInput{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV line %d: %w", line, err)
		}

		ratingField := strings.TrimSpace(record[columns["rating"]])
		input := ReviewInput{
			Text: record[columns["text"]],
			Date: record[columns["date"]],
		}
		if ratingField != "" {
			rating, err := strconv.Atoi(ratingField)
			if err != nil {
				return nil, fmt.Errorf("CSV line %d: bad rating %q: %w", line, ratingField, err)
			}
			input.Rating = &rating
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
