package permission

import (
	"strings"

	"storefront-voting/constant"
	"storefront-voting/model"
)

// ResultsPermission accepts a space separated scope list.
func ResultsPermission(claims *model.ResultsClaims) bool {
	if claims == nil {
		return false
	}
	for _, scope := range strings.Fields(claims.Scope) {
		if scope == constant.SCOPE_RESULTS_READ {
			return true
		}
	}
	return false
}
