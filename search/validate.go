package search

import (
	"fmt"
	"time"

	"next24/models"
	"next24/utils"
)

// maxAdvanceDays matches the common booking horizon of ~11 months.
const maxAdvanceDays = 330

const dateLayout = "2006-01-02"

// ValidateFlightRequest rejects malformed searches before any provider
// call is attempted.
func ValidateFlightRequest(req *models.FlightSearchRequest) error {
	if !utils.ValidateIATACode(req.Origin) {
		return fmt.Errorf("origin must be a 3-letter IATA code")
	}
	if !utils.ValidateIATACode(req.Destination) {
		return fmt.Errorf("destination must be a 3-letter IATA code")
	}
	if req.Origin == req.Destination {
		return fmt.Errorf("origin and destination must differ")
	}

	dep, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		return fmt.Errorf("invalid departure date")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if dep.Before(today) {
		return fmt.Errorf("departure date cannot be in the past")
	}
	if dep.After(today.AddDate(0, 0, maxAdvanceDays)) {
		return fmt.Errorf("departure date cannot be more than 11 months in advance")
	}

	if req.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, req.ReturnDate)
		if err != nil {
			return fmt.Errorf("invalid return date")
		}
		if !ret.After(dep) {
			return fmt.Errorf("return date must be after departure date")
		}
		if ret.After(today.AddDate(0, 0, maxAdvanceDays)) {
			return fmt.Errorf("return date cannot be more than 11 months in advance")
		}
	}

	if req.Adults < 1 || req.Adults > 9 {
		return fmt.Errorf("adults must be between 1 and 9")
	}
	if req.Children < 0 || req.Children > 9 || req.Infants < 0 || req.Infants > 9 {
		return fmt.Errorf("children and infants must be between 0 and 9")
	}

	if req.CabinClass == "" {
		req.CabinClass = models.CabinEconomy
	}
	if !models.ValidCabinClass(req.CabinClass) {
		return fmt.Errorf("unknown cabin class %q", req.CabinClass)
	}
	if req.MaxPrice < 0 {
		return fmt.Errorf("max price must be positive")
	}
	return nil
}

func ValidateHotelRequest(req *models.HotelSearchRequest) error {
	if req.Destination == "" {
		return fmt.Errorf("destination is required")
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return fmt.Errorf("invalid check-in date")
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return fmt.Errorf("invalid check-out date")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return fmt.Errorf("check-in date cannot be in the past")
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("check-out date must be after check-in date")
	}

	if req.Adults < 1 || req.Adults > 30 {
		return fmt.Errorf("adults must be between 1 and 30")
	}
	if req.Children < 0 || req.Children > 30 {
		return fmt.Errorf("children must be between 0 and 30")
	}
	if req.Rooms < 1 || req.Rooms > 30 {
		return fmt.Errorf("rooms must be between 1 and 30")
	}
	return nil
}
