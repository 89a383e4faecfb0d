// Copyright 2018 Andrew Bates
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"

	dali "github.com/rnixx/go-dali"
)

func TestDestinationFlag(t *testing.T) {
	tests := []struct {
		input    string
		expected dali.Address
		err      bool
	}{
		{"all", dali.Broadcast{}, false},
		{"0", dali.Short(0), false},
		{"63", dali.Short(63), false},
		{"64", nil, true},
		{"-1", nil, true},
		{"g0", dali.Group(0), false},
		{"g15", dali.Group(15), false},
		{"g16", nil, true},
		{"gx", nil, true},
		{"woops", nil, true},
	}

	for i, test := range tests {
		df := destinationFlag{}
		err := df.Set(test.input)
		if test.err {
			if err == nil {
				t.Errorf("tests[%d] expected an error", i)
			}
		} else if df.addr != test.expected {
			t.Errorf("tests[%d] expected %v got %v", i, test.expected, df.addr)
		}
	}
}

func TestDestinationFlagString(t *testing.T) {
	df := destinationFlag{}
	if df.String() != "" {
		t.Errorf("expected %q got %q", "", df.String())
	}

	df.Set("5")
	if df.String() != dali.Short(5).String() {
		t.Errorf("expected %q got %q", dali.Short(5).String(), df.String())
	}
}
