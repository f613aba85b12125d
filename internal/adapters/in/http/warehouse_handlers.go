package http

import (
	"net/http"

	"waypoint/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

func (r WarehouseRequest) details() commands.WarehouseDetails {
	return commands.WarehouseDetails{
		Location:       r.Location,
		Capacity:       r.Capacity,
		AvailableSpace: r.AvailableSpace,
	}
}

func (s *Server) listWarehouses(c echo.Context) error {
	warehouses, err := s.services.Warehouses.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(warehouses, toWarehouseResponse))
}

func (s *Server) createWarehouse(c echo.Context) error {
	var req WarehouseRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	managerID, err := optionalID("managerId", req.ManagerID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateWarehouseCommand(managerID, req.details())
	if err != nil {
		return err
	}

	created, err := s.services.Warehouses.Create(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toWarehouseResponse(created))
}

func (s *Server) getWarehouse(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	w, err := s.services.Warehouses.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWarehouseResponse(w))
}

func (s *Server) getWarehouseByLocation(c echo.Context) error {
	w, err := s.services.Warehouses.GetByLocation(c.Request().Context(), c.Param("location"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWarehouseResponse(w))
}

// updateWarehouse keeps the manager; managerId in the body is ignored.
func (s *Server) updateWarehouse(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req WarehouseRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateWarehouseCommand(id, req.details())
	if err != nil {
		return err
	}

	updated, err := s.services.Warehouses.Update(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWarehouseResponse(updated))
}

func (s *Server) deleteWarehouse(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := s.services.Warehouses.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
