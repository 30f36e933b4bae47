package driverdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeOTR(t *testing.T) {
	t.Parallel()

	t.Run("collapses records matching on the composite key", func(t *testing.T) {
		t.Parallel()

		records := []OTRHire{
			{ID: "otrmain_1", Name: "Sam Lee", Phone: "555-0100", Passed: "2023-03-15", RTGDate: "2023-03-25", Notes: "from main sheet"},
			{ID: "otrajggh_1", Name: "SAM LEE", Phone: "555-0100", Passed: "2023-03-15", RTGDate: "2023-03-25", Notes: "from ajggh sheet"},
			{ID: "otrajggh_2", Name: "Pat Kim", Phone: "555-0101", Passed: "2023-03-16", RTGDate: "2023-03-26"},
		}

		out := dedupeOTR(records)

		require.Len(t, out, 2)
		assert.Equal(t, "from main sheet", out[0].Notes, "first occurrence wins")
		assert.Equal(t, "Pat Kim", out[1].Name)
	})

	t.Run("renumbers survivors contiguously from 1", func(t *testing.T) {
		t.Parallel()

		records := []OTRHire{
			{ID: "otrmain_1", Name: "A", Phone: "1"},
			{ID: "otrmain_2", Name: "A", Phone: "1"},
			{ID: "otrmain_3", Name: "B", Phone: "2"},
			{ID: "otrajggh_1", Name: "C", Phone: "3"},
		}

		out := dedupeOTR(records)

		require.Len(t, out, 3)
		assert.Equal(t, "otr_1", out[0].ID)
		assert.Equal(t, "otr_2", out[1].ID)
		assert.Equal(t, "otr_3", out[2].ID)
	})

	t.Run("records differing in any key field are kept", func(t *testing.T) {
		t.Parallel()

		records := []OTRHire{
			{Name: "Sam Lee", Phone: "555-0100", Passed: "2023-03-15", RTGDate: "2023-03-25"},
			{Name: "Sam Lee", Phone: "555-0199", Passed: "2023-03-15", RTGDate: "2023-03-25"},
			{Name: "Sam Lee", Phone: "555-0100", Passed: "2023-03-16", RTGDate: "2023-03-25"},
		}

		out := dedupeOTR(records)

		assert.Len(t, out, 3)
	})

	t.Run("empty input stays empty and non-nil", func(t *testing.T) {
		t.Parallel()

		out := dedupeOTR(nil)

		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}
