package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeListBareArray(t *testing.T) {
	items, extras, err := decodeList[Case]([]byte(`[{"id":"C1","loan_id":"LN1"}]`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "C1", items[0].ID)
	assert.Nil(t, extras)
}

func TestDecodeListWrapped(t *testing.T) {
	body := `{"data":[{"id":"C1"},{"id":"C2"}],"total_earnings":500}`
	items, extras, err := decodeList[Case]([]byte(body))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 500.0, extraFloat(extras, "total_earnings"))
}

func TestDecodeListEmptyVariants(t *testing.T) {
	items, _, err := decodeList[Case]([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, items)

	items, _, err = decodeList[Case]([]byte(`{"data":[]}`))
	require.NoError(t, err)
	assert.Empty(t, items)

	items, _, err = decodeList[Case](nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDecodeListRejectsObjectWithoutData(t *testing.T) {
	_, _, err := decodeList[Case]([]byte(`{"cases":[]}`))
	assert.Error(t, err)
}

func TestDecodeListRejectsGarbage(t *testing.T) {
	_, _, err := decodeList[Case]([]byte(`"nope"`))
	assert.Error(t, err)
}

func TestDecodeObjectBare(t *testing.T) {
	var agency Agency
	require.NoError(t, decodeObject([]byte(`{"id":"A1","agency_name":"North"}`), &agency))
	assert.Equal(t, "North", agency.AgencyName)
}

func TestDecodeObjectWrapped(t *testing.T) {
	var detail CaseDetail
	body := `{"data":{"case_id":"C9","agent_name":"pat"}}`
	require.NoError(t, decodeObject([]byte(body), &detail))
	assert.Equal(t, "C9", detail.CaseID)
	assert.Equal(t, "pat", detail.AgentName)
}

func TestDecodeObjectEmptyBody(t *testing.T) {
	var agency Agency
	assert.NoError(t, decodeObject(nil, &agency))
}

func TestExtraFloatMissingKey(t *testing.T) {
	assert.Zero(t, extraFloat(nil, "total_earnings"))
}
