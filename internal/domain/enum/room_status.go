package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// RoomStatus represents the lifecycle state of a hotel room
type RoomStatus int

const (
	RoomStatusAvailable RoomStatus = 0
	RoomStatusOccupied  RoomStatus = 1
	RoomStatusCleaning  RoomStatus = 2
)

func (s RoomStatus) String() string {
	names := [...]string{"available", "occupied", "cleaning"}
	if int(s) < 0 || int(s) >= len(names) {
		return "available"
	}
	return names[s]
}

// ParseRoomStatus maps a status name to its enum value.
func ParseRoomStatus(s string) (RoomStatus, bool) {
	switch s {
	case "available":
		return RoomStatusAvailable, true
	case "occupied":
		return RoomStatusOccupied, true
	case "cleaning":
		return RoomStatusCleaning, true
	}
	return RoomStatusAvailable, false
}

func (s RoomStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *RoomStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = RoomStatus(i)
		return nil
	}
	switch str {
	case "available":
		*s = RoomStatusAvailable
	case "occupied":
		*s = RoomStatusOccupied
	case "cleaning":
		*s = RoomStatusCleaning
	}
	return nil
}

func (s RoomStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *RoomStatus) Scan(value interface{}) error {
	if value == nil {
		*s = RoomStatusAvailable
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = RoomStatus(v)
	case int:
		*s = RoomStatus(v)
	}
	return nil
}
