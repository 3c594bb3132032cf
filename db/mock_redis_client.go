package db

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
	"time"

	"vo-server/models"
	"vo-server/util"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data      map[string]string            // Key-value store
	expiresAt map[string]time.Time         // Expiry per key, when set with TTL
	geoData   map[string]map[string]GeoLoc // Geolocation data
	mu        sync.RWMutex                 // Mutex for thread-safe operations
	context   context.Context
}

// GeoLoc represents a geolocation with latitude and longitude.
type GeoLoc struct {
	Latitude  float64
	Longitude float64
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:      make(map[string]string),
		expiresAt: make(map[string]time.Time),
		geoData:   make(map[string]map[string]GeoLoc),
		context:   ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	delete(m.expiresAt, key)
	return nil
}

// SetWithTTL stores a key-value pair that expires after ttl.
func (m *MockRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.expiresAt[key] = time.Now().Add(ttl)
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if deadline, ok := m.expiresAt[key]; ok && time.Now().After(deadline) {
		return "", fmt.Errorf("key not found: %s", key)
	}
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// AddLocationWithJSON adds geolocation with JSON data in the mock Redis.
func (m *MockRedisClient) AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lon float64, data interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Serialize the data to JSON.
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %v", err)
	}

	// Add to geolocation data.
	if _, exists := m.geoData[geoKey]; !exists {
		m.geoData[geoKey] = make(map[string]GeoLoc)
	}
	m.geoData[geoKey][memberKey] = GeoLoc{Latitude: lat, Longitude: lon}

	// Add JSON data.
	m.data[memberKey] = string(jsonData)
	return nil
}

// GetLocationsWithinRadius retrieves JSON data for members within a given
// radius in meters, using great-circle distance.
func (m *MockRedisClient) GetLocationsWithinRadius(key string, lat, lon, radiusMeters float64) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	members, exists := m.geoData[key]
	if !exists {
		return nil, nil
	}

	center := models.Coordinates{Lat: lat, Lng: lon}
	var objects []string
	for memberKey, loc := range members {
		point := models.Coordinates{Lat: loc.Latitude, Lng: loc.Longitude}
		if util.HaversineMeters(center, point) > radiusMeters {
			continue
		}
		if data, ok := m.data[memberKey]; ok {
			objects = append(objects, data)
		}
	}
	return objects, nil
}

// Keys returns all stored keys matching the glob pattern.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for k := range m.data {
		if ok, err := path.Match(pattern, k); err == nil && ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Del removes a key from the mock Redis.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.expiresAt, key)
	return nil
}

func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

func (m *MockRedisClient) Ping() error {
	return nil
}
