package http

import (
	"net/http"
	"strings"

	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

func (s *Server) listOrders(c echo.Context) error {
	orders, err := s.services.Orders.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(orders, toOrderResponse))
}

func (s *Server) createOrder(c echo.Context) error {
	var req OrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	clientID, err := optionalID("clientId", req.ClientID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		clientID,
		order.Status(strings.TrimSpace(req.Status)),
		req.Origin,
		req.Destination,
		req.EstimatedDeliveryTime.ptr(),
	)
	if err != nil {
		return err
	}

	created, err := s.services.Orders.Create(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toOrderResponse(created))
}

func (s *Server) getOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	o, err := s.services.Orders.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

func (s *Server) listOrdersByClient(c echo.Context) error {
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}
	orders, err := s.services.Orders.ListByClient(c.Request().Context(), clientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(orders, toOrderResponse))
}

// updateOrderStatus takes the new status from the status query parameter.
func (s *Server) updateOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Status(strings.TrimSpace(c.QueryParam("status"))))
	if err != nil {
		return err
	}

	updated, err := s.services.Orders.UpdateStatus(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(updated))
}

func (s *Server) deleteOrder(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := s.services.Orders.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
