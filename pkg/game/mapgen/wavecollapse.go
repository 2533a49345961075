package mapgen

// Wave-function-collapse constants, reserved for the ninth strategy. The
// builder itself is not implemented yet and the dispatcher never selects it.
// TODO: implement pattern extraction and constraint solving over these.
const (
	wfcChunkSize  = 8
	wfcPatternCap = 1000
	wfcRetryCap   = 10
)
