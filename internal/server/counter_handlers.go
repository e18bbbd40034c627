package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetCounters handles GET /api/counters
func (s *Server) GetCounters(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	counters, err := s.counterService.ListCounters(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counters)
}

// GetCounter handles GET /api/counters/:slot. Reading a counter that does
// not exist yet creates it at zero.
func (s *Server) GetCounter(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	slot := c.Params("slot")

	counter, err := s.counterService.GetCounter(c.Context(), userID, slot)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counter)
}

// IncrementCounter handles POST /api/counters/:slot/increment
func (s *Server) IncrementCounter(c *fiber.Ctx) error {
	return s.adjustCounter(c, 1)
}

// DecrementCounter handles POST /api/counters/:slot/decrement
func (s *Server) DecrementCounter(c *fiber.Ctx) error {
	return s.adjustCounter(c, -1)
}

func (s *Server) adjustCounter(c *fiber.Ctx, direction int) error {
	userID := c.Locals("userID").(uint)
	slot := c.Params("slot")

	// An optional body can carry a step size; the default is 1.
	var req struct {
		Step int `json:"step"`
	}
	_ = c.BodyParser(&req)
	step := req.Step
	if step <= 0 {
		step = 1
	}

	counter, err := s.counterService.Adjust(c.Context(), userID, slot, direction*step)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counter)
}

// ResetCounter handles POST /api/counters/:slot/reset
func (s *Server) ResetCounter(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	slot := c.Params("slot")

	counter, err := s.counterService.Reset(c.Context(), userID, slot)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(counter)
}

// DeleteCounter handles DELETE /api/counters/:slot
func (s *Server) DeleteCounter(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	slot := c.Params("slot")

	if err := s.counterService.DeleteCounter(c.Context(), userID, slot); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Counter deleted"})
}
