// miscall: platform-calibrated base-miscall probabilities for genotyping.
// Copyright (c) 2017, 2018 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elprep/blob/master/LICENSE.txt>.

package utils

// SmallMapEntry is an entry in a SmallMap.
type SmallMapEntry struct {
	Key   Symbol
	Value interface{}
}

// A SmallMap maps Symbol keys to values. Alignments carry only a
// handful of optional tags, and a linear scan over a slice beats a
// native map at that size.
type SmallMap []SmallMapEntry

// Get returns the value of the first entry with the given key, and
// whether such an entry exists.
func (m SmallMap) Get(key Symbol) (interface{}, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// GetString is Get for string-valued entries. Entries of any other
// type are reported as absent.
func (m SmallMap) GetString(key Symbol) (string, bool) {
	value, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// Set associates the given value with the given key, replacing the
// value of an existing entry or appending a new one.
func (m *SmallMap) Set(key Symbol, value interface{}) {
	for index := range *m {
		if (*m)[index].Key == key {
			(*m)[index].Value = value
			return
		}
	}
	*m = append(*m, SmallMapEntry{key, value})
}
