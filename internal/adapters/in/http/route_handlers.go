package http

import (
	"net/http"

	"waypoint/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

func (r RouteRequest) details() commands.RouteDetails {
	return commands.RouteDetails{
		Origin:            r.Origin,
		Destination:       r.Destination,
		EstimatedTime:     r.EstimatedTime,
		TrafficConditions: r.TrafficConditions,
	}
}

func (s *Server) listRoutes(c echo.Context) error {
	routes, err := s.services.Routes.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(routes, toRouteResponse))
}

func (s *Server) createRoute(c echo.Context) error {
	var req RouteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	vehicleID, err := optionalID("vehicleId", req.VehicleID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateRouteCommand(vehicleID, req.details())
	if err != nil {
		return err
	}

	created, err := s.services.Routes.Create(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRouteResponse(created))
}

func (s *Server) getRoute(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	r, err := s.services.Routes.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRouteResponse(r))
}

func (s *Server) listRoutesByVehicle(c echo.Context) error {
	vehicleID, err := pathID(c, "vehicleId")
	if err != nil {
		return err
	}
	routes, err := s.services.Routes.ListByVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(routes, toRouteResponse))
}

func (s *Server) updateRoute(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RouteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateRouteCommand(id, req.details())
	if err != nil {
		return err
	}

	updated, err := s.services.Routes.Update(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRouteResponse(updated))
}

func (s *Server) deleteRoute(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := s.services.Routes.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
