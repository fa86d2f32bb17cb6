package isverenclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	isverenapimodels "isveren-scraper/models/api/isveren"
)

type Provider interface {
	//внутренний json api списка CV, отдаёт постраничный список
	GetPage(ctx context.Context, page int) (*isverenapimodels.PageResponse, error)
}

var Instance Provider

type impl struct {
	baseUrl string
}

func NewProvider(baseUrl string) {
	Instance = &impl{
		baseUrl: baseUrl,
	}
}

func (i impl) GetPage(ctx context.Context, page int) (*isverenapimodels.PageResponse, error) {
	uri := i.baseUrl + "?page=" + strconv.Itoa(page)
	logger := log.
		WithField("external_request", uri).
		WithField("page", page)

	r, _ := http.NewRequestWithContext(ctx, "GET", uri, nil)
	resp := isverenapimodels.PageResponse{}

	err := i.sendRequest(logger, r, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, resp interface{}) error {
	// заголовки под обычный браузерный запрос, иначе источник отдаёт html вместо json
	r.Header.Add("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36")
	r.Header.Add("Accept", "*/*")
	r.Header.Add("Accept-Language", "en-GB,en-US;q=0.9,en;q=0.8,ru;q=0.7,az;q=0.6")
	r.Header.Add("DNT", "1")
	r.Header.Add("X-Requested-With", "XMLHttpRequest")
	r.Header.Add("Referer", "https://isveren.az/cv")
	r.Header.Add("Sec-Fetch-Dest", "empty")
	r.Header.Add("Sec-Fetch-Mode", "cors")
	r.Header.Add("Sec-Fetch-Site", "same-origin")

	client := &http.Client{}
	response, err := client.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в isveren")
		return errors.Wrap(err, "ошибка отправки запроса")
	}
	defer response.Body.Close()

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		responseBody, _ := io.ReadAll(response.Body)
		err = json.Unmarshal(responseBody, resp)
		if err != nil {
			logger.WithError(err).Error("ошибка сериализации ответа")
			return errors.Wrap(err, "ошибка сериализации ответа")
		}
		return nil
	}

	responseBody, _ := io.ReadAll(response.Body)
	logger.
		WithField("status_code", response.StatusCode).
		WithField("response_body", string(responseBody)).
		Error("ошибка запроса страницы в isveren")
	return errors.Errorf("некорректный ответ источника, код %v", response.StatusCode)
}
