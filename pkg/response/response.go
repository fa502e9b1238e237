package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the wire contract shared with the schedule client.
// Success carries ok+data; failure carries ok+error and the verbatim
// upstream detail so callers can inspect what the workspace API said.
type Envelope struct {
	OK     bool        `json:"ok"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
	Detail interface{} `json:"detail,omitempty"`
}

// OK sends a success envelope.
func OK(c *gin.Context, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, Envelope{OK: true, Data: data})
}

// Fail sends a failure envelope with the given HTTP status.
func Fail(c *gin.Context, status int, message string, detail interface{}) {
	if status < http.StatusMultipleChoices {
		status = http.StatusInternalServerError
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(status, Envelope{OK: false, Error: message, Detail: detail})
}
