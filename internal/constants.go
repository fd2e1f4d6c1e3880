package internal

// Version is overridden at build time with -ldflags "-X sdaprof/internal.Version=..."
var Version = "undefined"

// Header row of the CSV output
const (
	TotalTimeColumn  = "time_total"
	KernelTimeColumn = "time_kernel"
)

// Version of the CBOR dataset format
const DatasetFormatVersion = 1

// CBOR tag used for dates (RFC 8943, full-date string)
const cborDateTag = 1004
