package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/snacksbunk-pos/pkg/diagnostics"
)

// ErrorReporter forwards the errors attached by response.Error (status 500
// and above) to the diagnostics sink once the handler has finished
func ErrorReporter(reporter diagnostics.Reporter) gin.HandlerFunc {
	if reporter == nil {
		reporter = diagnostics.NewLogReporter()
	}
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			reporter.Report("http", fmt.Errorf("%s %s: %w", c.Request.Method, c.FullPath(), e.Err))
		}
	}
}
