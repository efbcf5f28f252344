package contractor

import "errors"

var ErrContractorNotFound = errors.New("contractor not found")
