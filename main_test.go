package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_labels_Set(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    labels
		wantErr bool
	}{
		{"single", []string{"Gophers"}, labels{"Gophers"}, false},
		{"comma separated", []string{"Gophers, DM: alice,123"}, labels{"Gophers", "DM: alice", "123"}, false},
		{"repeated", []string{"Gophers", "DM: bob"}, labels{"Gophers", "DM: bob"}, false},
		{"empty entries skipped", []string{",Gophers,,"}, labels{"Gophers"}, false},
		{"empty", []string{" , "}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l labels
			var err error
			for _, v := range tt.values {
				err = l.Set(v)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.want, l)
		})
	}
}

func Test_labels_String(t *testing.T) {
	l := labels{"Gophers", "DM: alice"}
	assert.Equal(t, "Gophers,DM: alice", l.String())
}

func Test_ver(t *testing.T) {
	var buf bytes.Buffer
	ver(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), versionSig+"\n"))
}
