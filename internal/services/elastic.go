package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"arabica_back_end/internal/database"
	"arabica_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const menuIndex = "menu_items"

//
// --- INDEXATION DANS ELASTICSEARCH ---
//

// IndexMenuItem indexe un article du menu dans Elasticsearch
func IndexMenuItem(item models.MenuItem) {
	if database.Elastic == nil {
		log.Println("⚠️ Elastic non initialisé, impossible d'indexer:", item.Name)
		return
	}

	data, _ := json.Marshal(item)
	req := esapi.IndexRequest{
		Index:      menuIndex,
		DocumentID: strconv.Itoa(item.ID),
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", item.Name, res.String())
	} else {
		log.Printf("✅ Article indexé dans Elasticsearch: %s", item.Name)
	}
}

// RemoveMenuItemFromIndex supprime un article de l'index (après un DELETE admin)
func RemoveMenuItemFromIndex(itemID int) {
	if database.Elastic == nil {
		return
	}

	req := esapi.DeleteRequest{
		Index:      menuIndex,
		DocumentID: strconv.Itoa(itemID),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur suppression Elastic:", err)
		return
	}
	defer res.Body.Close()
}

//
// --- RECHERCHE DANS ELASTICSEARCH ---
//

// SearchMenu recherche des articles par nom, description ou catégorie
func SearchMenu(query string) ([]map[string]interface{}, error) {
	if database.Elastic == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "category"},
			},
		},
	}

	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{menuIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elastic a renvoyé une erreur: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("erreur décodage réponse Elastic: %v", err)
	}

	results := []map[string]interface{}{}
	for _, hit := range parsed.Hits.Hits {
		results = append(results, hit.Source)
	}

	return results, nil
}
