package apperr

type Code string

const (
	CodeValidation            Code = "VALIDATION_ERROR"
	CodeMissingRequiredFields Code = "MISSING_REQUIRED_FIELDS"
	CodeUnsupportedChain      Code = "UNSUPPORTED_CHAIN"

	CodeNotFound        Code = "NOT_FOUND"
	CodeAccountNotFound Code = "ACCOUNT_NOT_FOUND"

	CodeKMSKeyRetrievalFailed Code = "KMS_KEY_RETRIEVAL_FAILED"
	CodeKMSSigningFailed      Code = "KMS_SIGNING_FAILED"
	CodeRPCConnectionFailed   Code = "RPC_CONNECTION_FAILED"
	CodeRPCNotConfigured      Code = "RPC_NOT_CONFIGURED"
	CodeBundlerBuildFailed    Code = "BUNDLER_BUILD_FAILED"
	CodeBundlerSendFailed     Code = "BUNDLER_SEND_FAILED"
	CodeBundlerReceiptFailed  Code = "BUNDLER_RECEIPT_FAILED"
	CodeBundlerNotConfigured  Code = "BUNDLER_NOT_CONFIGURED"
	CodeDBSaveFailed          Code = "DB_SAVE_FAILED"
	CodeDBQueryFailed         Code = "DB_QUERY_FAILED"

	CodeBusiness Code = "BUSINESS_ERROR"
	CodeUnknown  Code = "UNKNOWN_ERROR"
)

type codeInfo struct {
	kind    Kind
	message string
}

var codes = map[Code]codeInfo{
	CodeValidation:            {KindValidation, "Validation failed"},
	CodeMissingRequiredFields: {KindValidation, "Required fields are missing"},
	CodeUnsupportedChain:      {KindValidation, "The specified blockchain chain is not supported"},
	CodeNotFound:              {KindNotFound, "Requested resource not found"},
	CodeAccountNotFound:       {KindNotFound, "Account not found"},
	CodeKMSKeyRetrievalFailed: {KindInfrastructure, "Failed to retrieve signing key from KMS"},
	CodeKMSSigningFailed:      {KindInfrastructure, "Failed to sign data via KMS"},
	CodeRPCConnectionFailed:   {KindInfrastructure, "Blockchain RPC connection failed"},
	CodeRPCNotConfigured:      {KindInfrastructure, "RPC URL is not configured for the chain"},
	CodeBundlerBuildFailed:    {KindInfrastructure, "Failed to build UserOperation"},
	CodeBundlerSendFailed:     {KindInfrastructure, "Failed to send UserOperation to bundler"},
	CodeBundlerReceiptFailed:  {KindInfrastructure, "Failed to retrieve UserOperation receipt"},
	CodeBundlerNotConfigured:  {KindInfrastructure, "Bundler URL is not configured for the chain"},
	CodeDBSaveFailed:          {KindInfrastructure, "Failed to save data to database"},
	CodeDBQueryFailed:         {KindInfrastructure, "Failed to query data from database"},
	CodeBusiness:              {KindBusiness, "Business logic error occurred"},
	CodeUnknown:               {KindUnknown, "An unexpected error occurred"},
}

// Kind returns the class of c. Unregistered codes are KindUnknown.
func (c Code) Kind() Kind {
	return codes[c].kind
}

// BaseMessage returns the fixed human-readable prefix for c.
func (c Code) BaseMessage() string {
	if info, ok := codes[c]; ok {
		return info.message
	}
	return codes[CodeUnknown].message
}
