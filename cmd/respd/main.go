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

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"respd/adminhttp"
	"respd/config"
	"respd/internal/logging"
	"respd/internal/metrics"
	"respd/server"
	"respd/store"
)

var (
	configPath = flag.String("c", "conf/respd.yml", "Config file path")
	showVer    = flag.Bool("v", false, "Show version")
	help       = flag.Bool("h", false, "Show usage info")
)

var (
	CommitSHA string
	Tag       string
	BuildTime string
)

func init() {
	if len(Tag) < 1 {
		Tag = "unknown"
	}
	if len(CommitSHA) < 1 {
		CommitSHA = "unknown"
	}
	if len(BuildTime) < 1 {
		BuildTime = "unknown"
	}
	adminhttp.Version = Tag
}

const banner string = `
__________ _______________________
___  __ \_  ____/__  ____/__  __ \
__  /_/ /  __/  __  /___ __  / / /
_  _, _// /___  _  /_/ / / /_/ /
/_/ |_|/_____/  /_____/ /_____/

`

func parseCli() {
	flag.Parse()
	if *showVer {
		fmt.Printf("version: %s\ncommit: %s\ntime: %s\n", Tag, CommitSHA, BuildTime)
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
}

func main() {
	parseCli()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("parse config file err: %s\n", err)
		os.Exit(1)
	}

	if err = logging.InitializeLogger(
		logging.WithPath(cfg.LogPath),
		logging.WithExpireDay(cfg.LogExpireDay),
		logging.WithLogLevel(cfg.LogLevel),
	); err != nil {
		fmt.Printf("failed to initialize logger, err: %s\n", err)
		os.Exit(1)
	}

	if err = cfg.Watch(); err != nil {
		logging.Errorf("failed to watch config, err: %s", err)
	}

	fmt.Print(banner)
	fmt.Printf("respd version: %s\n", Tag)
	fmt.Printf("respd listening on %s, pid: %d\n", cfg.ListenAddr, syscall.Getpid())
	logging.Infof("respd started with listen_addr: %s, pid: %d, version: %s", cfg.ListenAddr, syscall.Getpid(), Tag)

	st := store.New()
	stats := metrics.New("respd")

	if cfg.AdminAddr != "" {
		gin.SetMode(gin.ReleaseMode)
		engine := adminhttp.New(st)
		httpSrv := &http.Server{Handler: engine, Addr: cfg.AdminAddr}
		go func() {
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logging.Errorf("admin http server failed: %s", err)
			}
		}()
	}

	tcpServer, err := server.New(cfg.ListenAddr, st, stats)
	if err != nil {
		logging.Errorf("failed to bind %s: %s", cfg.ListenAddr, err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := tcpServer.Serve(ctx); err != nil {
		logging.Errorf("respd serve failed: %s", err)
	}

	logging.Infof("respd shutdown, pid: %d, listen: %s", syscall.Getpid(), cfg.ListenAddr)
}
