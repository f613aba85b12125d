package http

import (
	"net/http"
	"strings"

	"waypoint/internal/core/application/usecases/commands"
	"waypoint/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

func (s *Server) listPackages(c echo.Context) error {
	parcels, err := s.services.Parcels.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(parcels, toPackageResponse))
}

func (s *Server) createPackage(c echo.Context) error {
	var req PackageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	orderID, err := optionalID("orderId", req.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateParcelCommand(
		orderID, req.Description, req.Weight, parcel.Status(strings.TrimSpace(req.Status)),
	)
	if err != nil {
		return err
	}

	created, err := s.services.Parcels.Create(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPackageResponse(created))
}

func (s *Server) getPackage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := s.services.Parcels.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPackageResponse(p))
}

func (s *Server) listPackagesByOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	parcels, err := s.services.Parcels.ListByOrder(c.Request().Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapAll(parcels, toPackageResponse))
}

// updatePackage ignores orderId in the body; a package never moves between orders.
func (s *Server) updatePackage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PackageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateParcelCommand(
		id, req.Description, req.Weight, parcel.Status(strings.TrimSpace(req.Status)),
	)
	if err != nil {
		return err
	}

	updated, err := s.services.Parcels.Update(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPackageResponse(updated))
}

func (s *Server) deletePackage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := s.services.Parcels.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
