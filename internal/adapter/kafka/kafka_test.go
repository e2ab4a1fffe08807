package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofiavega98/HHSS-health-impacts/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	rec := domain.ResolvedCountyRecord{
		CandidateCountyRow: domain.CandidateCountyRow{
			EventName:  "Hurricane Harvey",
			State:      "TX",
			CountyName: "Harris",
			Year:       2017,
		},
		Storm:      "Harvey",
		FIPS:       "48201",
		FIPSSource: "registry",
		ResolvedAt: now,
	}

	msg, err := serializeToMessage(rec)
	require.NoError(t, err)

	assert.Equal(t, []byte("Harvey|48201|2017"), msg.Key)
	assert.Contains(t, string(msg.Value), `"storm":"Harvey"`)
	assert.Contains(t, string(msg.Value), `"fips":"48201"`)
	assert.Contains(t, string(msg.Value), `"county_name":"Harris"`)

	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "state", msg.Headers[0].Key)
	assert.Equal(t, []byte("TX"), msg.Headers[0].Value)
	assert.Equal(t, "fips_source", msg.Headers[1].Key)
	assert.Equal(t, []byte("registry"), msg.Headers[1].Value)
	assert.Equal(t, "resolved_at", msg.Headers[2].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[2].Value)
}
