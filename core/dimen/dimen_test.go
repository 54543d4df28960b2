package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp, is %s", d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %s", d)
	}
	//
	_, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	}
}

func TestParseFractionalDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.core")
	defer teardown()
	//
	d, _, err := ParseDimen("0.5in")
	assert.NoError(t, err)
	assert.InDelta(t, 36.0, d.Points(), 1e-9)
	d, _, err = ParseDimen("72.27pt")
	assert.NoError(t, err)
	assert.InDelta(t, 72.0, d.Points(), 1e-9)
	_, _, err = ParseDimen("12furlong")
	assert.Error(t, err)
}

func TestDesignUnits(t *testing.T) {
	// 950/1000 em at 12bp
	assert.InDelta(t, 11.4, FromDesignUnits(950, 12).Points(), 1e-9)
}
