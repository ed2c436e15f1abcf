package device_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/cache"
	"linkpulse/internal/device"
	"linkpulse/internal/domain"
)

const (
	uaChromeWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaEdgeWindows   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0"
	uaSafariMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15"
	uaSafariIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaFirefoxUbuntu = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"
	uaChromeAndroid = "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	uaAndroidTablet = "Mozilla/5.0 (Linux; Android 13; SM-X700) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaChromium      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chromium/120.0.0.0 Chrome/120.0.0.0 Safari/537.36"
	uaOperaPresto   = "Opera/9.80 (Windows NT 6.1; U; en) Presto/2.12.388 Version/12.16"
	uaIE11          = "Mozilla/5.0 (Windows NT 10.0; Trident/7.0; rv:11.0) like Gecko"
	uaSamsung       = "Mozilla/5.0 (Linux; Android 13; SM-S901B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/23.0 Mobile"
	uaUCBrowser     = "Mozilla/5.0 (Linux; U; Android 8.1.0; en-US) AppleWebKit/534.30 (KHTML, like Gecko) UCBrowser/13.4.0.1306 Mobile"
	uaCrOS          = "Mozilla/5.0 (X11; CrOS x86_64 14541.0.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaXbox          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; Xbox; Xbox One) AppleWebKit/537.36 (KHTML, like Gecko) Edge/44.18363.8131"
	uaSmartTV       = "Mozilla/5.0 (SMART-TV; Linux; Tizen 6.0) AppleWebKit/537.36 (KHTML, like Gecko) Version/6.0 TV Safari/537.36"
	uaFreeBSD       = "Mozilla/5.0 (X11; FreeBSD amd64; rv:120.0) Gecko/20100101 Firefox/120.0"
	uaCurl          = "curl/8.4.0"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want domain.DeviceInfo
	}{
		{"chrome on windows", uaChromeWindows, domain.DeviceInfo{Browser: "Chrome", DeviceType: "Desktop", OperatingSystem: "Windows"}},
		{"edge beats chrome", uaEdgeWindows, domain.DeviceInfo{Browser: "Edge", DeviceType: "Desktop", OperatingSystem: "Windows"}},
		{"safari on mac", uaSafariMac, domain.DeviceInfo{Browser: "Safari", DeviceType: "Desktop", OperatingSystem: "macOS"}},
		{"safari on iphone is ios not macos", uaSafariIPhone, domain.DeviceInfo{Browser: "Safari", DeviceType: "Mobile", OperatingSystem: "iOS"}},
		{"firefox on ubuntu before linux", uaFirefoxUbuntu, domain.DeviceInfo{Browser: "Firefox", DeviceType: "Desktop", OperatingSystem: "Ubuntu"}},
		{"android phone", uaChromeAndroid, domain.DeviceInfo{Browser: "Chrome", DeviceType: "Mobile", OperatingSystem: "Android"}},
		{"android without mobile is tablet", uaAndroidTablet, domain.DeviceInfo{Browser: "Chrome", DeviceType: "Tablet", OperatingSystem: "Android"}},
		{"chromium is not chrome nor safari", uaChromium, domain.DeviceInfo{Browser: "Unknown", DeviceType: "Desktop", OperatingSystem: "Linux"}},
		{"opera presto", uaOperaPresto, domain.DeviceInfo{Browser: "Opera", DeviceType: "Desktop", OperatingSystem: "Windows"}},
		{"internet explorer", uaIE11, domain.DeviceInfo{Browser: "Internet Explorer", DeviceType: "Desktop", OperatingSystem: "Windows"}},
		{"samsung browser", uaSamsung, domain.DeviceInfo{Browser: "Samsung Browser", DeviceType: "Mobile", OperatingSystem: "Android"}},
		{"uc browser", uaUCBrowser, domain.DeviceInfo{Browser: "UC Browser", DeviceType: "Mobile", OperatingSystem: "Android"}},
		{"chrome os", uaCrOS, domain.DeviceInfo{Browser: "Chrome", DeviceType: "Desktop", OperatingSystem: "Chrome OS"}},
		{"xbox console", uaXbox, domain.DeviceInfo{Browser: "Edge", DeviceType: "Gaming Console", OperatingSystem: "Windows"}},
		{"smart tv", uaSmartTV, domain.DeviceInfo{Browser: "Safari", DeviceType: "Smart TV", OperatingSystem: "Linux"}},
		{"freebsd", uaFreeBSD, domain.DeviceInfo{Browser: "Firefox", DeviceType: "Desktop", OperatingSystem: "FreeBSD"}},
		{"headless agent is iot", "SomeAgent/1.0 (headless)", domain.DeviceInfo{Browser: "Unknown", DeviceType: "IoT Device", OperatingSystem: "Unknown"}},
		{"curl", uaCurl, domain.DeviceInfo{Browser: "Unknown", DeviceType: "Desktop", OperatingSystem: "Unknown"}},
		{"empty", "", domain.UnknownDevice()},
		{"blank", "   ", domain.UnknownDevice()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, device.Classify(tt.ua))
		})
	}
}

func TestClassify_AppleMobileIsNotMacOS(t *testing.T) {
	agents := map[string]string{
		"iphone": uaSafariIPhone,
		"ipad":   "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
		"ipod":   "Mozilla/5.0 (iPod touch; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1",
		"crios":  "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) CriOS/120.0.6099.119 Mobile/15E148 Safari/604.1",
	}
	for name, ua := range agents {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "iOS", device.Classify(ua).OperatingSystem)
		})
	}

	assert.Equal(t, "macOS", device.Classify(uaSafariMac).OperatingSystem)
}

func TestClassify_Deterministic(t *testing.T) {
	first := device.Classify(uaChromeAndroid)
	for range 10 {
		assert.Equal(t, first, device.Classify(uaChromeAndroid))
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, device.Classify(uaSafariMac), device.Classify(uaSafariMac+" "))
	assert.Equal(t, "Firefox", device.Classify("MOZILLA/5.0 FIREFOX/120.0").Browser)
}

func TestLooksLikeBot(t *testing.T) {
	assert.True(t, device.LooksLikeBot("Googlebot/2.1 (+http://www.google.com/bot.html)"))
	assert.True(t, device.LooksLikeBot(uaCurl))
	assert.True(t, device.LooksLikeBot("facebookexternalhit/1.1"))
	assert.False(t, device.LooksLikeBot(uaChromeWindows))
	assert.False(t, device.LooksLikeBot(""))
}

func TestCachedClassifier(t *testing.T) {
	store, err := cache.NewLocal(20)
	require.NoError(t, err)
	defer store.Close()

	c := device.NewCachedClassifier(store, time.Hour)
	ctx := context.Background()

	got := c.Classify(ctx, uaSafariIPhone)
	assert.Equal(t, device.Classify(uaSafariIPhone), got)

	store.Wait()
	cached, found := store.Get("ua:" + uaSafariIPhone)
	require.True(t, found)
	assert.Equal(t, got, cached)

	assert.Equal(t, domain.UnknownDevice(), c.Classify(ctx, ""))
}
