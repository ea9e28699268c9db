package http

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
)

// compressJSON gzips JSON responses for clients that accept it. Bodiless
// responses carry no Content-Type and are left alone.
var compressJSON = middleware.Compress(gzip.DefaultCompression, "application/json")

// withGunzip inflates request bodies sent with Content-Encoding: gzip, which
// any client may send.
func withGunzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("func", "withGunzip").Msg("request body is not gzip")
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		defer zr.Close()

		r.Body = zr
		r.Header.Del("Content-Encoding")
		next.ServeHTTP(w, r)
	})
}
