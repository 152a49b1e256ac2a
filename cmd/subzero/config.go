package main

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/subzero/core"
	"github.com/npillmayer/subzero/engine/glyphing"
)

// Environment variables holding defaults for command line flags.
const (
	envSpaces  = "SUBZERO_SPACES"
	envBetween = "SUBZERO_BETWEEN"
	envSquash  = "SUBZERO_SQUASH"
	envTrace   = "SUBZERO_TRACE"
)

// traceKeys lists the tracers of all packages of this module.
var traceKeys = []string{"subzero.cli", "subzero.font", "subzero.glyphs", "subzero.input"}

type config struct {
	params     glyphing.Params
	traceLevel string
}

// loadConfig collects flag defaults from the environment.
func loadConfig(lookupEnv func(string) (string, bool)) (config, error) {
	conf := config{
		params:     glyphing.DefaultParams(),
		traceLevel: "Error",
	}
	for _, v := range []struct {
		key    string
		target *int
	}{
		{envSpaces, &conf.params.Spaces},
		{envBetween, &conf.params.Between},
		{envSquash, &conf.params.Squash},
	} {
		s, ok := lookupEnv(v.key)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return conf, core.WrapError(err, core.EINVALID,
				"environment variable %s must be a number, is '%s'", v.key, s)
		}
		*v.target = n
	}
	if s, ok := lookupEnv(envTrace); ok && s != "" {
		conf.traceLevel = s
	}
	return conf, nil
}

// normalizeTraceLevel checks a trace level given by the user.
func normalizeTraceLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return "Debug", nil
	case "info":
		return "Info", nil
	case "error":
		return "Error", nil
	}
	return "", core.Error(core.EINVALID, "unknown trace level '%s', use one of Debug, Info, Error", level)
}

// configureTracing routes all tracers to Go's standard logger, which writes to
// stderr.
func configureTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return core.WrapError(err, core.EINTERNAL, "error configuring tracing")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
