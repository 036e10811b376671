package model

// CapabilityVersion selects the feature set a backend deployment offers.
type CapabilityVersion int

const (
	CapabilityVersionNone CapabilityVersion = iota
	CapabilityVersion20200321
)

// Capabilities is the feature set resolved from a CapabilityVersion.
type Capabilities struct {
	Version              CapabilityVersion
	TransferStatusRevert bool
	TransferStatusReject bool
	Accept               string
}

var capabilityTable = map[CapabilityVersion]Capabilities{
	CapabilityVersionNone: {
		Version: CapabilityVersionNone,
		Accept:  "application/json",
	},
	CapabilityVersion20200321: {
		Version:              CapabilityVersion20200321,
		TransferStatusRevert: true,
		TransferStatusReject: true,
		Accept:               "application/vnd.blockset.V_2020-03-21+json",
	},
}

// LookupCapabilities resolves a version; unknown versions fall back to CapabilityVersionNone.
func LookupCapabilities(v CapabilityVersion) Capabilities {
	if c, ok := capabilityTable[v]; ok {
		return c
	}
	return capabilityTable[CapabilityVersionNone]
}

// ParseCapabilityVersion maps a configuration string onto a version.
func ParseCapabilityVersion(s string) (CapabilityVersion, bool) {
	switch s {
	case "", "none":
		return CapabilityVersionNone, true
	case "v2020-03-21", "2020-03-21":
		return CapabilityVersion20200321, true
	default:
		return CapabilityVersionNone, false
	}
}

func (v CapabilityVersion) String() string {
	switch v {
	case CapabilityVersion20200321:
		return "v2020-03-21"
	default:
		return "none"
	}
}

// AcceptsStatus reports whether a transaction status may appear under these capabilities.
// Reverted and rejected are only valid when the deployment advertises them.
func (c Capabilities) AcceptsStatus(status TransactionStatus) bool {
	switch status {
	case StatusConfirmed, StatusSubmitted, StatusFailed:
		return true
	case StatusReverted:
		return c.TransferStatusRevert
	case StatusRejected:
		return c.TransferStatusReject
	default:
		return false
	}
}
