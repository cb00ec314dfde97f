package sdk

import (
	"fmt"
	"strings"

	"github.com/qt-creator/qt-creator-sub139/pkg/errors"
)

// Kind identifies the concrete package variant. The numeric values double as the
// cross-kind sort rank.
type Kind int

// Package kinds.
const (
	KindUnknown       Kind = 1 << 0
	KindSdkTools      Kind = 1 << 1
	KindBuildTools    Kind = 1 << 2
	KindPlatformTools Kind = 1 << 3
	KindSdkPlatform   Kind = 1 << 4
	KindSystemImage   Kind = 1 << 5
	KindEmulatorTools Kind = 1 << 6
	KindNDK           Kind = 1 << 7
	KindExtraTools    Kind = 1 << 8
	KindGeneric       Kind = 1 << 9

	AnyValidKind = KindSdkTools | KindBuildTools | KindPlatformTools | KindSdkPlatform |
		KindSystemImage | KindEmulatorTools | KindNDK | KindExtraTools | KindGeneric
)

var kindNames = map[Kind]string{
	KindUnknown:       "UnknownPackage",
	KindSdkTools:      "SdkToolsPackage",
	KindBuildTools:    "BuildToolsPackage",
	KindPlatformTools: "PlatformToolsPackage",
	KindSdkPlatform:   "SdkPlatformPackage",
	KindSystemImage:   "SystemImagePackage",
	KindEmulatorTools: "EmulatorToolsPackage",
	KindNDK:           "NDKPackage",
	KindExtraTools:    "ExtraToolsPackage",
	KindGeneric:       "GenericSdkPackage",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a kind by its String name, case-insensitively. The "Package"
// suffix may be omitted.
func ParseKind(name string) (Kind, error) {
	want := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "Package"))
	for k, n := range kindNames {
		if strings.ToLower(strings.TrimSuffix(n, "Package")) == want {
			return k, nil
		}
	}
	return KindUnknown, errors.Wrapf(errors.ErrUnknownKind, "%q", name)
}

// State is the installation state of a package. Values are bit flags so that
// callers can query several states at once.
type State int

// Installation states.
const (
	StateUnknown   State = 1 << 0
	StateInstalled State = 1 << 1
	StateAvailable State = 1 << 2

	AnyValidState = StateInstalled | StateAvailable
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "Unknown"
	case StateInstalled:
		return "Installed"
	case StateAvailable:
		return "Available"
	case AnyValidState:
		return "Any"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Matches reports whether s is included in mask.
func (s State) Matches(mask State) bool {
	return s&mask != 0
}

// ParseStateMask converts a CLI state name into a mask.
func ParseStateMask(name string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "installed":
		return StateInstalled, nil
	case "available":
		return StateAvailable, nil
	case "", "all", "any":
		return AnyValidState, nil
	default:
		return 0, errors.Wrapf(errors.ErrUnknownState, "%q", name)
	}
}
