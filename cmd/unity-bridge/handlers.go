package main

import (
	"context"
	"encoding/json"
	"fmt"

	"go.lsp.dev/jsonrpc2"
)

type logsParams struct {
	Count int    `json:"count,omitempty"`
	Level string `json:"level,omitempty"`
}

type pingParams struct {
	Path string `json:"path"`
}

func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case "unity/status":
		res, err := s.client.Status(ctx)
		return reply(ctx, res, err)
	case "unity/refresh":
		res, err := s.client.Refresh(ctx)
		return reply(ctx, res, err)
	case "unity/logs":
		params := logsParams{Count: 100}
		if raw := req.Params(); len(raw) > 0 {
			if err := json.Unmarshal(raw, &params); err != nil {
				return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrInvalidParams, err))
			}
		}
		res, err := s.client.Logs(ctx, params.Count, params.Level)
		return reply(ctx, res, err)
	case "unity/logs/clear":
		res, err := s.client.ClearLogs(ctx)
		return reply(ctx, res, err)
	case "unity/compileStatus":
		res, err := s.client.CompileStatus(ctx)
		return reply(ctx, res, err)
	case "unity/play":
		res, err := s.client.Play(ctx)
		return reply(ctx, res, err)
	case "unity/stop":
		res, err := s.client.Stop(ctx)
		return reply(ctx, res, err)
	case "unity/pause":
		res, err := s.client.Pause(ctx)
		return reply(ctx, res, err)
	case "unity/ping":
		var params pingParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %s", jsonrpc2.ErrInvalidParams, err))
		}
		if params.Path == "" {
			return reply(ctx, nil, fmt.Errorf("%w: path is required", jsonrpc2.ErrInvalidParams))
		}
		res, err := s.client.PingAsset(ctx, params.Path)
		return reply(ctx, res, err)
	case "unity/selection":
		res, err := s.client.Selection(ctx)
		return reply(ctx, res, err)
	case "unity/projectPath":
		res, err := s.client.ProjectPath(ctx)
		return reply(ctx, res, err)
	case "unity/currentScene":
		res, err := s.client.CurrentScene(ctx)
		return reply(ctx, res, err)
	}
	return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
}
