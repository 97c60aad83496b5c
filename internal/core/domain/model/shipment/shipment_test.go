package shipment_test

import (
	"regexp"
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("Amazing st. 5", "New York", "127675")
	require.NoError(t, err)
	return addr
}

func validItems() []shipment.Item {
	return []shipment.Item{shipment.NewItem("Samsung Electronics", 1)}
}

func TestNewShipment(t *testing.T) {
	t.Run("should create valid shipment with all valid parameters", func(t *testing.T) {
		addr := validAddress(t)

		s, err := shipment.NewShipment("12345", addr, "Modern Shipping", "test@mail.com", validItems())

		require.NoError(t, err)
		require.NotNil(t, s)
		require.NoError(t, s.Validate())
		assert.Equal(t, "12345", s.OrderID())
		assert.Equal(t, addr, s.Address())
		assert.Equal(t, "Modern Shipping", s.Carrier())
		assert.Equal(t, "test@mail.com", s.ReceiverEmail())
		assert.Equal(t, shipment.Created, s.Status())
		assert.Nil(t, s.UpdatedAt())
		assert.False(t, s.CreatedAt().IsZero())
		assert.NoError(t, s.ID().Validate())

		require.Len(t, s.Items(), 1)
		assert.Equal(t, "Samsung Electronics", s.Items()[0].Product())
		assert.Equal(t, 1, s.Items()[0].Quantity())
	})

	t.Run("should assign an eight digit number", func(t *testing.T) {
		s, err := shipment.NewShipment("12345", validAddress(t), "Modern Shipping", "test@mail.com", validItems())

		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d{8}$`), s.Number())
	})

	t.Run("should fail with empty orderId", func(t *testing.T) {
		s, err := shipment.NewShipment("", validAddress(t), "Modern Shipping", "test@mail.com", validItems())

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "OrderId must not be empty")
	})

	t.Run("should fail with unconstructed address", func(t *testing.T) {
		var addr kernel.Address

		s, err := shipment.NewShipment("12345", addr, "Modern Shipping", "test@mail.com", validItems())

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "address must be created")
	})

	t.Run("should fail with empty carrier", func(t *testing.T) {
		s, err := shipment.NewShipment("12345", validAddress(t), "", "test@mail.com", validItems())

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "Carrier must not be empty")
	})

	t.Run("should fail with empty receiverEmail", func(t *testing.T) {
		s, err := shipment.NewShipment("12345", validAddress(t), "Modern Shipping", "", validItems())

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "ReceiverEmail must not be empty")
	})

	t.Run("should fail with empty items list", func(t *testing.T) {
		s, err := shipment.NewShipment("12345", validAddress(t), "Modern Shipping", "test@mail.com", nil)

		require.Error(t, err)
		assert.Nil(t, s)

		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Items", validationErr.Field)
		assert.Equal(t, "Items list must not be empty", validationErr.Message)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		s, err := shipment.NewShipment("", validAddress(t), "", "", nil)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "OrderId must not be empty")
		assert.Contains(t, err.Error(), "Carrier must not be empty")
		assert.Contains(t, err.Error(), "ReceiverEmail must not be empty")
		assert.Contains(t, err.Error(), "Items list must not be empty")
	})

	t.Run("generated numbers differ between shipments", func(t *testing.T) {
		numbers := make(map[string]bool)
		for range 20 {
			s, err := shipment.NewShipment("order", validAddress(t), "Carrier", "a@b.c", validItems())
			require.NoError(t, err)
			numbers[s.Number()] = true
		}

		// 20 draws from an 8-digit space colliding completely is not credible.
		assert.Greater(t, len(numbers), 1)
	})
}

func TestShipment_ChangeStatus(t *testing.T) {
	newShipment := func(t *testing.T) *shipment.Shipment {
		t.Helper()
		s, err := shipment.NewShipment("12345", validAddress(t), "Modern Shipping", "test@mail.com", validItems())
		require.NoError(t, err)
		return s
	}

	t.Run("should set status and stamp updatedAt", func(t *testing.T) {
		s := newShipment(t)
		require.Nil(t, s.UpdatedAt())

		err := s.ChangeStatus(shipment.Dispatched)

		require.NoError(t, err)
		assert.Equal(t, shipment.Dispatched, s.Status())
		require.NotNil(t, s.UpdatedAt())
		assert.WithinDuration(t, time.Now().UTC(), *s.UpdatedAt(), time.Second)
	})

	t.Run("should allow any transition between valid statuses", func(t *testing.T) {
		s := newShipment(t)

		// Deliberately out of order: the transition model is open.
		sequence := []shipment.Status{
			shipment.Delivered,
			shipment.InTransit,
			shipment.Cancelled,
			shipment.Processing,
			shipment.Created,
		}

		for _, status := range sequence {
			require.NoError(t, s.ChangeStatus(status))
			assert.Equal(t, status, s.Status())
		}
	})

	t.Run("should refresh updatedAt on every change", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.ChangeStatus(shipment.Processing))
		first := *s.UpdatedAt()

		time.Sleep(5 * time.Millisecond)
		require.NoError(t, s.ChangeStatus(shipment.Dispatched))
		second := *s.UpdatedAt()

		assert.True(t, second.After(first))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		s := newShipment(t)

		err := s.ChangeStatus(shipment.Unknown)

		require.Error(t, err)
		assert.Equal(t, shipment.Created, s.Status())
		assert.Nil(t, s.UpdatedAt())
	})

	t.Run("createdAt is unaffected by status changes", func(t *testing.T) {
		s := newShipment(t)
		created := s.CreatedAt()

		require.NoError(t, s.ChangeStatus(shipment.Delivered))

		assert.Equal(t, created, s.CreatedAt())
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("should restore shipment from persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		updatedAt := time.Now().UTC()
		items := []shipment.Item{
			shipment.NewItem("Samsung Electronics", 1),
			shipment.NewItem("USB-C Cable", 3),
		}

		s, err := shipment.RestoreShipment(
			id, "12340011", "12345", validAddress(t),
			"Modern Shipping", "test@mail.com",
			shipment.InTransit, items, createdAt, &updatedAt,
		)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "12340011", s.Number())
		assert.Equal(t, shipment.InTransit, s.Status())
		assert.Equal(t, createdAt, s.CreatedAt())
		require.NotNil(t, s.UpdatedAt())
		assert.Equal(t, updatedAt, *s.UpdatedAt())

		require.Len(t, s.Items(), 2)
		assert.Equal(t, "Samsung Electronics", s.Items()[0].Product())
		assert.Equal(t, "USB-C Cable", s.Items()[1].Product())
	})

	t.Run("should fail with empty number", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			kernel.NewUUID(), "", "12345", validAddress(t),
			"Modern Shipping", "test@mail.com",
			shipment.Created, validItems(), time.Now().UTC(), nil,
		)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			kernel.NewUUID(), "12340011", "12345", validAddress(t),
			"Modern Shipping", "test@mail.com",
			shipment.Unknown, validItems(), time.Now().UTC(), nil,
		)

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("zero value shipment fails validation", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})

	t.Run("nil shipment fails validation", func(t *testing.T) {
		var s *shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_Items_Immutability(t *testing.T) {
	t.Run("mutating the returned slice does not affect the aggregate", func(t *testing.T) {
		s, err := shipment.NewShipment("12345", validAddress(t), "Modern Shipping", "test@mail.com", validItems())
		require.NoError(t, err)

		items := s.Items()
		items[0] = shipment.NewItem("Tampered", 99)

		assert.Equal(t, "Samsung Electronics", s.Items()[0].Product())
	})
}
