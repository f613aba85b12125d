package http

import (
	"net/http"

	"waypoint/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

func (r VehicleRequest) details() commands.VehicleDetails {
	return commands.VehicleDetails{
		Type:            r.Type,
		LicensePlate:    r.LicensePlate,
		Capacity:        r.Capacity,
		CurrentLocation: r.CurrentLocation,
	}
}

func (s *Server) listVehicles(c echo.Context) error {
	vehicles, err := s.services.Vehicles.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(vehicles, toVehicleResponse))
}

func (s *Server) createVehicle(c echo.Context) error {
	var req VehicleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateVehicleCommand(req.details())
	if err != nil {
		return err
	}

	created, err := s.services.Vehicles.Create(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toVehicleResponse(created))
}

func (s *Server) getVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	v, err := s.services.Vehicles.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVehicleResponse(v))
}

func (s *Server) getVehicleByLicensePlate(c echo.Context) error {
	v, err := s.services.Vehicles.GetByLicensePlate(c.Request().Context(), c.Param("plate"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVehicleResponse(v))
}

func (s *Server) assignDriver(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	driverID, err := pathID(c, "driverId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignDriverCommand(id, driverID)
	if err != nil {
		return err
	}

	updated, err := s.services.Vehicles.AssignDriver(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVehicleResponse(updated))
}

func (s *Server) updateVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req VehicleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateVehicleCommand(id, req.details())
	if err != nil {
		return err
	}

	updated, err := s.services.Vehicles.Update(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVehicleResponse(updated))
}

func (s *Server) deleteVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := s.services.Vehicles.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
