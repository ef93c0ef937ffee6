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


package core

import "fmt"

// ValidatePhrases validates a phrase list according to domain rules.
//
// Validation rules:
//   - The list must contain at least one phrase
//   - Every phrase must be non-empty
//
// An empty input text is NOT a validation failure: searching an empty text
// is well defined and simply finds nothing.
func ValidatePhrases(phrases []string) error {
	if len(phrases) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPhraseList, ErrEmptyPhraseList)
	}

	for i, phrase := range phrases {
		if phrase == "" {
			return fmt.Errorf("%w: %w (index %d)", ErrInvalidPhraseList, ErrEmptyPhrase, i)
		}
	}

	return nil
}
