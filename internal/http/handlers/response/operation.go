package response

const (
	OPERATION_VERIFY_EMAIL           = "VERIFY_EMAIL"
	OPERATION_REQUEST_PASSWORD_RESET = "REQUEST_PASSWORD_RESET"
	OPERATION_PASSWORD_RESET         = "PASSWORD_RESET"

	OPERATION_RESULT_SUCCESS = "SUCCESS"
	OPERATION_RESULT_ERROR   = "ERROR"
)

// OperationStatus reports the outcome of token-driven operations that
// deliberately hide why they failed.
type OperationStatus struct {
	OperationName   string `json:"operationName"`
	OperationResult string `json:"operationResult"`
}

func NewOperationStatus(name string, ok bool) OperationStatus {
	result := OPERATION_RESULT_ERROR
	if ok {
		result = OPERATION_RESULT_SUCCESS
	}
	return OperationStatus{OperationName: name, OperationResult: result}
}
