package fiberlog

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid     = "pid"
	TagStatus  = "status"
	TagMethod  = "method"
	TagPath    = "path"
	TagLatency = "latency"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag извлекает значение поля лога из контекста запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	m := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		switch tag {
		case TagPid:
			m[tag] = func(c *fiber.Ctx, d *data) interface{} {
				return strconv.Itoa(d.pid)
			}
		case TagStatus:
			m[tag] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Response().StatusCode()
			}
		case TagMethod:
			m[tag] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Method()
			}
		case TagPath:
			m[tag] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Path()
			}
		case TagLatency:
			m[tag] = func(c *fiber.Ctx, d *data) interface{} {
				return d.end.Sub(d.start).String()
			}
		case TagBody:
			m[tag] = func(c *fiber.Ctx, d *data) interface{} {
				return string(c.Body())
			}
		case TagResBody:
			m[tag] = func(c *fiber.Ctx, d *data) interface{} {
				return string(c.Response().Body())
			}
		case RequestID:
			m[tag] = func(c *fiber.Ctx, d *data) interface{} {
				return c.Get(fiber.HeaderXRequestID)
			}
		}
	}
	return m
}
