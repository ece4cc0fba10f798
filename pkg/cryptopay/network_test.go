package cryptopay

import "testing"

func TestNetworkUnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Network
		wantErr bool
	}{
		{input: "mainnet", want: Mainnet},
		{input: "testnet", want: Testnet},
		{input: "TESTNET", want: Testnet},
		{input: " Mainnet ", want: Mainnet},
		{input: "devnet", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			var got Network
			err := got.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("UnmarshalText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNetworkEndpoint(t *testing.T) {
	t.Parallel()

	if got := Mainnet.Endpoint(); got != "https://pay.crypt.bot/" {
		t.Errorf("Mainnet.Endpoint() = %q", got)
	}
	if got := Testnet.Endpoint(); got != "https://testnet-pay.crypt.bot/" {
		t.Errorf("Testnet.Endpoint() = %q", got)
	}
	if got := Network("").Endpoint(); got != "https://pay.crypt.bot/" {
		t.Errorf("zero Network Endpoint() = %q, want mainnet", got)
	}
}
