package constants

import "os"

// Output defaults
const (
	DefaultOutputPath = "order.csv"
	DefaultDocsDir    = "./docs/"
)

// CSV layout
const (
	HeaderOrder  = "order"
	HeaderTaskID = "task_id"
)

// MaxPoolSize caps the in-memory task pool (rows rounded up to a whole
// number of repetitions per id)
const MaxPoolSize = 1 << 28

// OutputFileMode is used when the output file has to be created
const OutputFileMode os.FileMode = 0644
