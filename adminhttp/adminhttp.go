// Copyright (c) 2022 The rcproxy Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"): you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

// Package adminhttp exposes the operational HTTP surface: Prometheus
// scraping, pprof, a version endpoint, and a debug view of the store's
// namespace sizes. None of it touches the RESP wire protocol; it's a
// side door for operators, not a client-facing interface.
package adminhttp

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"respd/store"
)

// Version is overwritten at startup by the main package with its build
// tag (set via ldflags, "unknown" when absent). It stays "dev" only when
// this package runs without that main package, as in tests.
var Version = "dev"

// New builds the gin engine serving the admin endpoints against st.
func New(st store.Store) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	pprof.Register(engine)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/version", handleVersion)
	engine.GET("/debug/store", handleStoreDebug(st))
	return engine
}

func handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": Version})
}

// storeDebugResponse reports how many distinct keys live in each
// namespace, generalized from the reference proxy's cluster-topology
// debug endpoint to this server's own data model.
type storeDebugResponse struct {
	Strings int `json:"strings"`
	Hashes  int `json:"hashes"`
	Sets    int `json:"sets"`
}

func handleStoreDebug(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		strings, hashes, sets := st.NamespaceSizes()
		c.JSON(http.StatusOK, storeDebugResponse{Strings: strings, Hashes: hashes, Sets: sets})
	}
}
