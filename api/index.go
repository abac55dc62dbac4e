package handler

import (
	"net/http"
	"os"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

var (
	handler     http.Handler
	handlerOnce sync.Once
	handlerErr  error
)

// Handler serves the hotel API from a serverless function. The store is loaded once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	handlerOnce.Do(func() {
		logger.Configure(config.Get(), os.Stdout)

		server, err := di.InitializeService()
		if err != nil {
			handlerErr = err

			return
		}

		handler = server.Handler()
	})

	if handlerErr != nil {
		log.Error().Err(handlerErr).Msg("Failed to initialize service")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	handler.ServeHTTP(w, r)
}
