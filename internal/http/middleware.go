package httpapi

import (
	"log"
	"net/http"
	"time"
)

// statusRecorder captures what the handler wrote so the access log can
// report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

// RequestLogger writes one access-log line per request. The client address
// goes through resolveClientIP so the log and the visit records agree on
// who the caller was when the app sits behind a proxy.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(recorder, r)
		if recorder.status == 0 {
			recorder.status = http.StatusOK
		}
		log.Printf("%s %s %s %d %dB %s", resolveClientIP(r), r.Method, r.URL.Path, recorder.status, recorder.bytes, time.Since(start).Round(time.Microsecond))
	})
}
