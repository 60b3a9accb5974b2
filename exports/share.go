package exports

import (
	"context"
	"fmt"
	"time"

	"next24/db"
	"next24/globals"
	"next24/models"
	"next24/rdx"
	"next24/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// shareTTL bounds how long a share id resolves without being refreshed.
const shareTTL = 30 * 24 * time.Hour

// CreateShareLink issues an opaque share id and URL for an itinerary. Redis
// is the authoritative store for the id mapping, so the write must succeed
// before any success is reported. The mapping lands first: if flipping the
// itinerary public fails afterwards, the stored id resolves to a private
// itinerary and stays dead until its TTL.
func CreateShareLink(ctx context.Context, it *models.Itinerary) (string, string, error) {
	shareID := utils.GenerateRandomString(13)
	if err := rdx.StoreJSON("share:"+shareID, it.ItineraryID, shareTTL); err != nil {
		return "", "", fmt.Errorf("storing share link: %w", err)
	}

	if !it.IsPublic {
		update := bson.M{"$set": bson.M{"ispublic": true, "updatedat": time.Now().UTC().Format(time.RFC3339)}}
		if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": it.ItineraryID}, update); err != nil {
			return "", "", fmt.Errorf("enabling public sharing: %w", err)
		}
		it.IsPublic = true
	}

	url := fmt.Sprintf("https://%s/shared/%s", globals.ShareDomain, shareID)
	return shareID, url, nil
}

// ResolveShare maps a share id back to its itinerary. The itinerary must
// still be public; a flipped flag invalidates every outstanding link.
func ResolveShare(ctx context.Context, shareID string) (*models.Itinerary, error) {
	var itineraryID string
	if !rdx.GetJSON("share:"+shareID, &itineraryID) {
		return nil, fmt.Errorf("share link not found")
	}

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}).Decode(&it)
	if err != nil {
		return nil, fmt.Errorf("itinerary not found")
	}
	if !it.IsPublic {
		return nil, fmt.Errorf("itinerary is private")
	}
	return &it, nil
}
