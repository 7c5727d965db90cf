package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/xtding233/draw-odds-backend/internal/report"
)

type responder struct{ c *gin.Context }

func (r responder) wantsJSON() bool {
	accept := strings.ToLower(r.c.GetHeader("Accept"))
	return strings.Contains(accept, "application/json")
}

// lang prefers ?lang= over Accept-Language.
func (r responder) lang() language.Tag {
	if l := r.c.Query("lang"); l != "" {
		return report.ParseLang(l)
	}
	return report.ParseLang(r.c.GetHeader("Accept-Language"))
}

func (r responder) err(status int, msg string) {
	if r.wantsJSON() {
		r.c.JSON(status, gin.H{"error": msg})
		return
	}
	r.c.String(status, msg)
}

func (r responder) ok(text string, payload gin.H) {
	if r.wantsJSON() {
		r.c.JSON(http.StatusOK, payload)
		return
	}
	r.c.String(http.StatusOK, text)
}
