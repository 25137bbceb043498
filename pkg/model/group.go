package model

import (
	"github.com/pkg/errors"
)

// Group is a named subscription collection
type Group string

const (
	GroupBeloved     = Group("beloved")
	GroupTimekilling = Group("timekilling")
)

// Groups lists all subscription groups in menu order
var Groups = []Group{GroupBeloved, GroupTimekilling}

func ParseGroup(name string) (Group, error) {
	for _, group := range Groups {
		if string(group) == name {
			return group, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownGroup, "%q", name)
}

// Sorting is the order in which episodes are listed
type Sorting string

const (
	SortingAsc  = Sorting("asc")
	SortingDesc = Sorting("desc")
)
